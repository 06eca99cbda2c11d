// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/taibuivan/myflix/internal/platform/apperr"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// memoryRepository is an in-memory [Repository] keyed by username.
type memoryRepository struct {
	mu     sync.Mutex
	users  map[string]*User
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: make(map[string]*User)}
}

// clone returns a copy so callers never alias stored state.
func clone(user *User) *User {
	copied := *user
	copied.FavoriteMovies = slices.Clone(user.FavoriteMovies)
	if copied.FavoriteMovies == nil {
		copied.FavoriteMovies = []string{}
	}
	return &copied
}

func (repo *memoryRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	user, found := repo.users[username]
	if !found {
		return nil, nil
	}
	return clone(user), nil
}

func (repo *memoryRepository) Create(_ context.Context, user *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, found := repo.users[user.Username]; found {
		return apperr.DuplicateUser(user.Username)
	}
	repo.nextID++
	user.ID = fmt.Sprintf("u%d", repo.nextID)
	repo.users[user.Username] = clone(user)
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, username string, fields UpdateFields) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	user, found := repo.users[username]
	if !found {
		return nil, apperr.NotFound(resourceName(username))
	}
	if fields.Username != nil {
		delete(repo.users, username)
		user.Username = *fields.Username
		repo.users[user.Username] = user
	}
	if fields.PasswordHash != nil {
		user.PasswordHash = *fields.PasswordHash
	}
	if fields.Email != nil {
		user.Email = *fields.Email
	}
	if fields.Birthday != nil {
		user.Birthday = *fields.Birthday
	}
	return clone(user), nil
}

func (repo *memoryRepository) Delete(_ context.Context, username string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	user, found := repo.users[username]
	if !found {
		return nil, apperr.NotFound(resourceName(username))
	}
	delete(repo.users, username)
	return clone(user), nil
}

func (repo *memoryRepository) AddFavorite(_ context.Context, username, movieID string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	user, found := repo.users[username]
	if !found {
		return nil, apperr.NotFound(resourceName(username))
	}
	user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	return clone(user), nil
}

func (repo *memoryRepository) RemoveFavorite(_ context.Context, username, movieID string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	user, found := repo.users[username]
	if !found {
		return nil, apperr.NotFound(resourceName(username))
	}
	user.FavoriteMovies = slices.DeleteFunc(user.FavoriteMovies, func(id string) bool { return id == movieID })
	return clone(user), nil
}
