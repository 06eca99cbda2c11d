// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/database/schema"
	"github.com/taibuivan/myflix/internal/platform/dberr"
	"github.com/taibuivan/myflix/internal/platform/postgres"
	"github.com/taibuivan/myflix/pkg/uuid"
)

// resourceName labels NOT_FOUND errors with the missing username.
func resourceName(username string) string {
	return "User " + username
}

// PostgresRepository implements [Repository] on users.account.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// returning is the projection shared by reads and RETURNING clauses.
var returning = fmt.Sprintf("%s::text, %s",
	schema.UserAccount.ID,
	strings.Join(schema.UserAccount.Columns()[1:], ", "),
)

/*
FindByUsername retrieves a user record by its unique username.

Returns:
  - *User: Hydrated account, or nil if no user has this username
  - error: Database errors only
*/
func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`, returning, schema.UserAccount.Table, schema.UserAccount.Username)

	user, err := scanUser(repository.db.QueryRow(context, query, username))
	if dberr.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, resourceName(username), "find_user")
	}
	return user, nil
}

/*
Create persists a new user record into the users.account table.

The unique constraint on username is the final guard against concurrent
registrations; its violation is reported as DUPLICATE_USER.
*/
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New()
	}
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, schema.UserAccount.Table, strings.Join(schema.UserAccount.Columns(), ", "))

	_, err := repository.db.Exec(context, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Birthday.Ptr(),
		user.FavoriteMovies,
	)

	return mapWriteError(err, user.Username, "create_user")
}

/*
Update applies a partial update and returns the post-update record.

Only the set fields of [UpdateFields] appear in the SET clause; updatedat is
always refreshed so an empty update still proves the row exists.
*/
func (repository *PostgresRepository) Update(context context.Context, username string, fields UpdateFields) (*User, error) {
	assignments := make([]string, 0, 5)
	args := []any{username}

	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Username != nil {
		set(schema.UserAccount.Username, *fields.Username)
	}
	if fields.PasswordHash != nil {
		set(schema.UserAccount.Password, *fields.PasswordHash)
	}
	if fields.Email != nil {
		set(schema.UserAccount.Email, *fields.Email)
	}
	if fields.Birthday != nil {
		set(schema.UserAccount.Birthday, fields.Birthday.Ptr())
	}
	assignments = append(assignments, schema.UserAccount.UpdatedAt+" = now()")

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $1
		RETURNING %s;
	`, schema.UserAccount.Table, strings.Join(assignments, ", "), schema.UserAccount.Username, returning)

	user, err := scanUser(repository.db.QueryRow(context, query, args...))
	if dberr.IsNoRows(err) {
		return nil, apperr.NotFound(resourceName(username))
	}
	if err != nil {
		conflicting := username
		if fields.Username != nil {
			conflicting = *fields.Username
		}
		return nil, mapWriteError(err, conflicting, "update_user")
	}
	return user, nil
}

// Delete removes the account and returns the deleted record.
func (repository *PostgresRepository) Delete(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
		RETURNING %s;
	`, schema.UserAccount.Table, schema.UserAccount.Username, returning)

	user, err := scanUser(repository.db.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName(username), "delete_user")
	}
	return user, nil
}

// AddFavorite appends movieID with array_append; duplicates are kept.
func (repository *PostgresRepository) AddFavorite(context context.Context, username, movieID string) (*User, error) {
	return repository.updateFavorites(context, "array_append", username, movieID)
}

// RemoveFavorite drops all occurrences of movieID with array_remove.
func (repository *PostgresRepository) RemoveFavorite(context context.Context, username, movieID string) (*User, error) {
	return repository.updateFavorites(context, "array_remove", username, movieID)
}

func (repository *PostgresRepository) updateFavorites(context context.Context, function, username, movieID string) (*User, error) {
	column := schema.UserAccount.FavoriteMovies
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s(%s, $2::text), %s = now()
		WHERE %s = $1
		RETURNING %s;
	`, schema.UserAccount.Table, column, function, column, schema.UserAccount.UpdatedAt, schema.UserAccount.Username, returning)

	user, err := scanUser(repository.db.QueryRow(context, query, username, movieID))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName(username), function)
	}
	return user, nil
}

// # Row Mapping

func scanUser(row pgx.Row) (*User, error) {
	var birthday *time.Time
	user := &User{}

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&birthday,
		&user.FavoriteMovies,
	)
	if err != nil {
		return nil, err
	}

	if birthday != nil {
		user.Birthday = NewDate(*birthday)
	}
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []string{}
	}
	return user, nil
}

// mapWriteError turns a unique violation on username into DUPLICATE_USER.
func mapWriteError(err error, username, action string) error {
	if err == nil {
		return nil
	}
	wrapped := dberr.Wrap(err, resourceName(username), action)
	if errors.Is(wrapped, dberr.ErrDuplicate) {
		return apperr.DuplicateUser(username)
	}
	return wrapped
}
