package schema

// CatalogMovieTable represents the 'catalog.movie' table.
//
// Genre and director are denormalized into the row: the catalog is read-only
// and every read returns them together.
type CatalogMovieTable struct {
	Table            string
	ID               string
	Title            string
	Description      string
	GenreName        string
	GenreDescription string
	DirectorName     string
	DirectorBio      string
	DirectorBirth    string
	DirectorDeath    string
	ImagePath        string
	Featured         string
	CreatedAt        string
}

// CatalogMovie is the schema definition for catalog.movie
var CatalogMovie = CatalogMovieTable{
	Table:            "catalog.movie",
	ID:               "id",
	Title:            "title",
	Description:      "description",
	GenreName:        "genrename",
	GenreDescription: "genredescription",
	DirectorName:     "directorname",
	DirectorBio:      "directorbio",
	DirectorBirth:    "directorbirth",
	DirectorDeath:    "directordeath",
	ImagePath:        "imagepath",
	Featured:         "featured",
	CreatedAt:        "createdat",
}

// Columns returns the columns read back into a movie record, in scan order.
func (t CatalogMovieTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.GenreName, t.GenreDescription,
		t.DirectorName, t.DirectorBio, t.DirectorBirth, t.DirectorDeath,
		t.ImagePath, t.Featured,
	}
}

// DirectorColumns returns the director sub-record columns, in scan order.
func (t CatalogMovieTable) DirectorColumns() []string {
	return []string{t.DirectorName, t.DirectorBio, t.DirectorBirth, t.DirectorDeath}
}
