// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/myflix/internal/platform/apperr"
)

// ErrDuplicate marks a write rejected by a unique constraint. Domain stores
// translate it into their own conflict error.
var ErrDuplicate = errors.New("dberr: duplicate key")

// IsUniqueViolation reports whether err is a Postgres unique_violation (23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// IsNoRows reports whether err means the query matched nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Wrap inspects a database error and wraps it into a meaningful error.
// It hides internal database details from the client while classifying the error type.
//
// # Mapping
//   - pgx.ErrNoRows -> apperr NOT_FOUND for the given resource
//   - unique_violation -> ErrDuplicate
//   - anything else -> apperr INTERNAL_ERROR carrying the action and cause
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if IsNoRows(err) {
		return apperr.NotFound(resource)
	}

	// 2. Constraint mapping
	if IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w", action, ErrDuplicate)
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
