// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package user_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	mongoplatform "github.com/taibuivan/myflix/internal/platform/mongo"
	"github.com/taibuivan/myflix/internal/user"
	"github.com/taibuivan/myflix/pkg/pointer"
)

// setupMongoRepository starts MongoDB and returns an indexed repository.
func setupMongoRepository(t *testing.T) *user.MongoRepository {
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

	repo := user.NewMongoRepository(database)
	require.NoError(t, repo.EnsureIndexes(ctx))
	require.NoError(t, repo.EnsureIndexes(ctx), "index creation must be repeatable")
	return repo
}

func TestMongoRepository_Integration(t *testing.T) {
	repo := setupMongoRepository(t)
	ctx := context.Background()

	birthday, err := user.ParseDate("1990-04-12")
	require.NoError(t, err)

	alice := &user.User{Username: "alice", PasswordHash: "hash", Email: "alice@example.com", Birthday: birthday}
	require.NoError(t, repo.Create(ctx, alice))
	assert.NotEmpty(t, alice.ID)

	err = repo.Create(ctx, &user.User{Username: "alice", PasswordHash: "other", Email: "x@example.com"})
	assert.True(t, apperr.HasCode(err, apperr.CodeDuplicateUser))
	assert.EqualError(t, err, "alice already exists")

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, "1990-04-12", found.Birthday.String())
	assert.Equal(t, []string{}, found.FavoriteMovies)

	// Favorites keep insertion order and duplicates; removal drops every copy.
	for _, id := range []string{"m1", "m2", "m1"} {
		_, err = repo.AddFavorite(ctx, "alice", id)
		require.NoError(t, err)
	}
	updated, err := repo.RemoveFavorite(ctx, "alice", "m1")
	require.NoError(t, err)
	assert.Equal(t, []string{"m2"}, updated.FavoriteMovies)

	updated, err = repo.RemoveFavorite(ctx, "alice", "absent")
	require.NoError(t, err)
	assert.Equal(t, []string{"m2"}, updated.FavoriteMovies)

	_, err = repo.AddFavorite(ctx, "ghost", "m1")
	assert.EqualError(t, err, "User ghost not found")

	// An update with no fields returns the stored record unchanged.
	unchanged, err := repo.Update(ctx, "alice", user.UpdateFields{})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", unchanged.Email)

	_, err = repo.Update(ctx, "ghost", user.UpdateFields{})
	assert.EqualError(t, err, "User ghost not found")

	require.NoError(t, repo.Create(ctx, &user.User{Username: "bobby", PasswordHash: "hash", Email: "bob@example.com"}))
	_, err = repo.Update(ctx, "alice", user.UpdateFields{Username: pointer.To("bobby")})
	assert.True(t, apperr.HasCode(err, apperr.CodeDuplicateUser))
	assert.EqualError(t, err, "bobby already exists")

	updated, err = repo.Update(ctx, "alice", user.UpdateFields{Username: pointer.To("alice2"), Email: pointer.To("a2@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "a2@example.com", updated.Email)
	assert.Equal(t, []string{"m2"}, updated.FavoriteMovies)

	missing, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(ctx, "alice2")
	require.NoError(t, err)
	assert.Equal(t, "alice2", deleted.Username)

	_, err = repo.Delete(ctx, "alice2")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.EqualError(t, err, "User alice2 not found")
}
