// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// Keys use a dedicated type so that values stored by other packages under
// the same string never collide with ours.
package ctxkey

// Key is the type of every context key defined here.
type Key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID Key = "request_id"

	// KeyUser is the context key for the verified token claims ([sec.AuthClaims]).
	KeyUser Key = "user"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger Key = "logger"
)
