package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table          string
	ID             string
	Username       string
	Password       string
	Email          string
	Birthday       string
	FavoriteMovies string
	CreatedAt      string
	UpdatedAt      string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:          "users.account",
	ID:             "id",
	Username:       "username",
	Password:       "passwordhash",
	Email:          "email",
	Birthday:       "birthday",
	FavoriteMovies: "favoritemovies",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns returns the columns read back into a user record, in scan order.
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.Password, t.Email, t.Birthday, t.FavoriteMovies}
}
