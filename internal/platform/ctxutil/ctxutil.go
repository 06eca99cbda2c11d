// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides typed accessors for the request-scoped values
// stored in [context.Context] by the middleware chain.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/myflix/internal/platform/ctxkey"
	"github.com/taibuivan/myflix/internal/platform/sec"
)

// lookup returns the value stored under key, or the zero T when it is
// absent or of another type.
func lookup[T any](ctx context.Context, key ctxkey.Key) T {
	value, _ := ctx.Value(key).(T)
	return value
}

// # Request Tracing

// WithRequestID attaches the correlation id of the current request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns the correlation id, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	return lookup[string](ctx, ctxkey.KeyRequestID)
}

// # Structured Logging

// WithLogger attaches the per-request child logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger returns the request logger, falling back to [slog.Default] so
// services stay usable from the CLI and from tests.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger := lookup[*slog.Logger](ctx, ctxkey.KeyLogger); logger != nil {
		return logger
	}
	return slog.Default()
}

// # Identity

// WithAuthUser attaches the verified token claims.
func WithAuthUser(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, claims)
}

// GetAuthUser returns the verified claims, or nil for an anonymous request.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	return lookup[*sec.AuthClaims](ctx, ctxkey.KeyUser)
}
