// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/myflix/internal/platform/database/schema"
	"github.com/taibuivan/myflix/internal/platform/dberr"
	"github.com/taibuivan/myflix/internal/platform/postgres"
	"github.com/taibuivan/myflix/pkg/uuid"
)

// PostgresRepository implements [Repository] and [Writer] on catalog.movie.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository creates a new PostgreSQL movie repository.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectMovies is the shared projection; the id is cast so it scans into a string.
var selectMovies = fmt.Sprintf(`
	SELECT %s::text, %s
	FROM %s`,
	schema.CatalogMovie.ID,
	strings.Join(schema.CatalogMovie.Columns()[1:], ", "),
	schema.CatalogMovie.Table,
)

func (repository *PostgresRepository) ListMovies(context context.Context) ([]*Movie, error) {
	query := selectMovies + fmt.Sprintf(`
	ORDER BY %s ASC;`, schema.CatalogMovie.Title)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Movie", "list_movies")
	}
	return collectMovies(rows)
}

func (repository *PostgresRepository) GetMovie(context context.Context, id string) (*Movie, error) {

	// Ids are UUIDs here; anything else cannot match a row
	if !uuid.IsValid(id) {
		return nil, nil
	}

	query := selectMovies + fmt.Sprintf(`
	WHERE %s = $1;`, schema.CatalogMovie.ID)

	movie, err := scanMovie(repository.db.QueryRow(context, query, id))
	if dberr.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "Movie", "get_movie")
	}
	return movie, nil
}

func (repository *PostgresRepository) ListByGenre(context context.Context, genre string) ([]*Movie, error) {
	query := selectMovies + fmt.Sprintf(`
	WHERE %s = $1
	ORDER BY %s ASC;`, schema.CatalogMovie.GenreName, schema.CatalogMovie.Title)

	rows, err := repository.db.Query(context, query, genre)
	if err != nil {
		return nil, dberr.Wrap(err, "Movie", "list_movies_by_genre")
	}
	return collectMovies(rows)
}

func (repository *PostgresRepository) GetDirector(context context.Context, name string) (*Director, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		LIMIT 1;
	`,
		strings.Join(schema.CatalogMovie.DirectorColumns(), ", "),
		schema.CatalogMovie.Table,
		schema.CatalogMovie.DirectorName,
	)

	director := &Director{}
	err := repository.db.QueryRow(context, query, name).Scan(&director.Name, &director.Bio, &director.Birth, &director.Death)
	if dberr.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "Director", "get_director")
	}
	return director, nil
}

// CreateMovie inserts a movie, assigning a UUIDv7 when the id is empty.
func (repository *PostgresRepository) CreateMovie(context context.Context, movie *Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New()
	}

	columns := schema.CatalogMovie.Columns()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`, schema.CatalogMovie.Table, strings.Join(columns, ", "))

	_, err := repository.db.Exec(context, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Genre.Name,
		movie.Genre.Description,
		movie.Director.Name,
		movie.Director.Bio,
		movie.Director.Birth,
		movie.Director.Death,
		movie.ImagePath,
		movie.Featured,
	)
	if err != nil {
		return dberr.Wrap(err, "Movie", "create_movie")
	}
	return nil
}

// # Row Mapping

func scanMovie(row pgx.Row) (*Movie, error) {
	movie := &Movie{}
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre.Name,
		&movie.Genre.Description,
		&movie.Director.Name,
		&movie.Director.Bio,
		&movie.Director.Birth,
		&movie.Director.Death,
		&movie.ImagePath,
		&movie.Featured,
	)
	if err != nil {
		return nil, err
	}
	return movie, nil
}

func collectMovies(rows pgx.Rows) ([]*Movie, error) {
	defer rows.Close()

	movies := make([]*Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Movie", "scan_movie")
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Movie", "iterate_movies")
	}
	return movies, nil
}
