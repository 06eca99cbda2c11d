// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package movie_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/taibuivan/myflix/internal/movie"
	mongoplatform "github.com/taibuivan/myflix/internal/platform/mongo"
	"github.com/taibuivan/myflix/pkg/pointer"
)

func setupMongoRepository(t *testing.T) *movie.MongoRepository {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, database, err := mongoplatform.NewClient(ctx, uri, "myflix_test", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	return movie.NewMongoRepository(database)
}

func TestMongoRepository_Integration(t *testing.T) {
	repo := setupMongoRepository(t)
	ctx := context.Background()

	nolan := movie.Director{Name: "Christopher Nolan", Bio: "British-American filmmaker", Birth: "1970"}
	kubrick := movie.Director{Name: "Stanley Kubrick", Bio: "American filmmaker", Birth: "1928", Death: pointer.To("1999")}
	scifi := movie.Genre{Name: "Science Fiction", Description: "Speculative"}

	catalog := []*movie.Movie{
		{Title: "Memento", Genre: movie.Genre{Name: "Thriller"}, Director: nolan},
		{Title: "Inception", Genre: scifi, Director: nolan, Featured: true},
		{Title: "2001: A Space Odyssey", Genre: scifi, Director: kubrick},
	}
	for _, entry := range catalog {
		require.NoError(t, repo.CreateMovie(ctx, entry))
		assert.Len(t, entry.ID, 24)
	}

	movies, err := repo.ListMovies(ctx)
	require.NoError(t, err)
	titles := make([]string, 0, len(movies))
	for _, entry := range movies {
		titles = append(titles, entry.Title)
	}
	assert.Equal(t, []string{"2001: A Space Odyssey", "Inception", "Memento"}, titles)

	found, err := repo.GetMovie(ctx, catalog[1].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Inception", found.Title)
	assert.True(t, found.Featured)
	assert.Equal(t, nolan, found.Director)

	missing, err := repo.GetMovie(ctx, "000000000000000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.GetMovie(ctx, "not-an-object-id")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byGenre, err := repo.ListByGenre(ctx, "Science Fiction")
	require.NoError(t, err)
	assert.Len(t, byGenre, 2)

	none, err := repo.ListByGenre(ctx, "Western")
	require.NoError(t, err)
	assert.Empty(t, none)

	director, err := repo.GetDirector(ctx, "Stanley Kubrick")
	require.NoError(t, err)
	require.NotNil(t, director)
	assert.Equal(t, kubrick, *director)

	unknown, err := repo.GetDirector(ctx, "Nobody")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}
