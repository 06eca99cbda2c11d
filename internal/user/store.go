// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import "context"

// Repository defines the persistence contract for user accounts.
//
// # Absence
//
// FindByUsername returns (nil, nil) when no user matches. Mutations of a
// missing user fail with apperr NOT_FOUND.
type Repository interface {
	FindByUsername(context context.Context, username string) (*User, error)

	// Create fails with apperr DUPLICATE_USER when the username is taken.
	Create(context context.Context, user *User) error

	// Update applies the set fields and returns the post-update record.
	Update(context context.Context, username string, fields UpdateFields) (*User, error)

	// Delete removes the account and returns the deleted record.
	Delete(context context.Context, username string) (*User, error)

	// AddFavorite appends movieID, duplicates included.
	AddFavorite(context context.Context, username, movieID string) (*User, error)

	// RemoveFavorite drops every occurrence of movieID; absent ids are a no-op.
	RemoveFavorite(context context.Context, username, movieID string) (*User, error)
}
