// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/ctxutil"
	"github.com/taibuivan/myflix/internal/platform/sec"
	"github.com/taibuivan/myflix/internal/platform/validate"
	"github.com/taibuivan/myflix/pkg/pointer"
)

// # Validation Rules

const (
	// UsernameMinLength is the shortest accepted username.
	UsernameMinLength = 5

	// PasswordMaxBytes is the bcrypt input limit; longer passwords are rejected
	// instead of silently truncated.
	PasswordMaxBytes = 72
)

// Service implements account use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a user service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday string
}

/*
Register validates, hashes, and persists a brand new user account.

Every rule is checked before the first error is returned, so the client
receives the complete list of field failures in one response.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: ValidationFailed, DuplicateUser or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	validator := &validate.Validator{}
	checkUsername(validator, input.Username)
	checkPassword(validator, input.Password)
	checkEmail(validator, input.Email)
	if input.Birthday != "" {
		validator.Date(FieldBirthday, input.Birthday)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Advisory check; the unique index settles concurrent registrations.
	existing, err := service.repo.FindByUsername(context, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.DuplicateUser(input.Username)
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user_service_hash_failed: %w", err)
	}

	user := &User{
		Username:       input.Username,
		PasswordHash:   hashedPassword,
		Email:          input.Email,
		FavoriteMovies: []string{},
	}
	if input.Birthday != "" {
		user.Birthday, _ = ParseDate(input.Birthday)
	}

	if err := service.repo.Create(context, user); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_registered", slog.String("username", user.Username))
	return user, nil
}

// # Profile

// Get returns the account, or NOT_FOUND.
func (service *Service) Get(context context.Context, username string) (*User, error) {
	user, err := service.repo.FindByUsername(context, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound(resourceName(username))
	}
	return user, nil
}

// UpdateInput is a partial profile change. Nil fields are left untouched.
type UpdateInput struct {
	Username *string
	Password *string
	Email    *string
	Birthday *string
}

/*
Update validates the supplied fields and applies them.

Only present fields are validated; the same rules as registration apply to
each of them. A new username must not belong to another account.

Returns:
  - *User: The post-update record
  - error: ValidationFailed, DuplicateUser, NotFound or storage errors
*/
func (service *Service) Update(context context.Context, username string, input UpdateInput) (*User, error) {
	validator := &validate.Validator{}
	if input.Username != nil {
		checkUsername(validator, *input.Username)
	}
	if input.Password != nil {
		checkPassword(validator, *input.Password)
	}
	if input.Email != nil {
		checkEmail(validator, *input.Email)
	}
	if input.Birthday != nil {
		validator.Date(FieldBirthday, *input.Birthday)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	fields := UpdateFields{Username: input.Username, Email: input.Email}

	if input.Username != nil && *input.Username != username {
		taken, err := service.repo.FindByUsername(context, *input.Username)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, apperr.DuplicateUser(*input.Username)
		}
	}

	if input.Password != nil {
		hashedPassword, err := sec.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user_service_hash_failed: %w", err)
		}
		fields.PasswordHash = pointer.To(hashedPassword)
	}

	if input.Birthday != nil {
		birthday, _ := ParseDate(*input.Birthday)
		fields.Birthday = pointer.To(birthday)
	}

	user, err := service.repo.Update(context, username, fields)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_updated", slog.String("username", user.Username))
	return user, nil
}

// Delete removes the account and returns the deleted record.
func (service *Service) Delete(context context.Context, username string) (*User, error) {
	user, err := service.repo.Delete(context, username)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_deleted", slog.String("username", user.Username))
	return user, nil
}

// # Favorites

// Favorites returns the ordered favorite movie ids.
func (service *Service) Favorites(context context.Context, username string) ([]string, error) {
	user, err := service.Get(context, username)
	if err != nil {
		return nil, err
	}
	return user.FavoriteMovies, nil
}

// AddFavorite appends movieID and returns the updated record.
func (service *Service) AddFavorite(context context.Context, username, movieID string) (*User, error) {
	if strings.TrimSpace(movieID) == "" {
		return nil, apperr.BadRequest("Movie id is required")
	}
	return service.repo.AddFavorite(context, username, movieID)
}

// RemoveFavorite removes every occurrence of movieID. Removing an id that is
// not a favorite succeeds and leaves the list unchanged.
func (service *Service) RemoveFavorite(context context.Context, username, movieID string) (*User, error) {
	if strings.TrimSpace(movieID) == "" {
		return nil, apperr.BadRequest("Movie id is required")
	}
	return service.repo.RemoveFavorite(context, username, movieID)
}

// # Rules

func checkUsername(validator *validate.Validator, username string) {
	validator.Required(FieldUsername, username)
	if username == "" {
		return
	}
	validator.MinLen(FieldUsername, username, UsernameMinLength).
		Alphanumeric(FieldUsername, username)
}

// Passwords are taken verbatim, so a whitespace-only password is allowed.
func checkPassword(validator *validate.Validator, password string) {
	validator.Custom(FieldPassword, password == "", "This field is required").
		MaxBytes(FieldPassword, password, PasswordMaxBytes)
}

func checkEmail(validator *validate.Validator, email string) {
	validator.Required(FieldEmail, email)
	if email == "" {
		return
	}
	validator.Email(FieldEmail, email)
}
