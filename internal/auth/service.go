// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package auth implements the login use case: credential verification and
// issuance of the bearer token used by every protected route.
//
// # Architecture
//
// The service depends on two narrow interfaces, [UserFinder] and
// [TokenProvider], so it knows nothing about HTTP, SQL or JWT internals.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/ctxutil"
	"github.com/taibuivan/myflix/internal/platform/metrics"
	"github.com/taibuivan/myflix/internal/platform/sec"
	"github.com/taibuivan/myflix/internal/user"
)

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - username: The username of the account, used as the subject.
	//   - timeToLive: The duration before the token expires.
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)
}

// UserFinder is the read side of the user store needed for login.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing or login
// logic must be reviewed with the token verifier in mind.
type Service struct {
	users         UserFinder
	tokenProvider TokenProvider
	tokenTTL      time.Duration
	metrics       *metrics.Metrics
}

// NewService constructs a new [Service]. m may be nil.
func NewService(users UserFinder, tokenProvider TokenProvider, tokenTTL time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		users:         users,
		tokenProvider: tokenProvider,
		tokenTTL:      tokenTTL,
		metrics:       m,
	}
}

// LoginSession is the outcome of a successful login.
type LoginSession struct {
	AccessToken string
	User        *user.User
}

/*
Login validates user credentials and issues an access token.

Parameters:
  - context: context.Context
  - username: Account name as typed by the client
  - password: Plain-text password

Returns:
  - *LoginSession: Token and the authenticated record
  - error: AuthenticationFailed for any credential mismatch, or storage errors

# Flow
 1. Lookup user by username.
 2. Verify password hash using bcrypt.
 3. Sign a token valid for the configured TTL.
*/
func (service *Service) Login(context context.Context, username, password string) (*LoginSession, error) {
	logger := ctxutil.GetLogger(context)

	// ── 1. Fetch User Profile ─────────────────────────────────────────────

	account, err := service.users.FindByUsername(context, username)
	if err != nil {
		return nil, err
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// Same error, and the same bcrypt cost, for an unknown user and a wrong password.
	if account == nil {
		sec.BurnPasswordCheck(password)
	}
	if account == nil || !sec.CheckPasswordHash(password, account.PasswordHash) {
		service.metrics.RecordLogin(metrics.LoginFailure)
		logger.InfoContext(context, "login_failed", slog.String("username", username))
		return nil, apperr.AuthenticationFailed()
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	accessToken, err := service.tokenProvider.GenerateAccessToken(account.ID, account.Username, service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.metrics.RecordLogin(metrics.LoginSuccess)
	logger.InfoContext(context, "login_succeeded", slog.String("username", account.Username))

	return &LoginSession{AccessToken: accessToken, User: account}, nil
}
