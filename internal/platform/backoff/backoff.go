// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package backoff retries the first contact with a backing store, so the API
// can boot alongside database and cache containers that are still starting.
package backoff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sethvargo/go-retry"

	"github.com/taibuivan/myflix/internal/platform/constants"
)

// Until calls ping until it succeeds, the attempts run out, or ctx ends.
//
// # Parameters
//   - ctx: Bounds the whole wait, including sleeps between attempts.
//   - logger: Receives one warning per failed attempt.
//   - store: Name used in logs and the returned error, e.g. "postgres".
//   - ping: Connectivity probe; any error is retried.
func Until(ctx context.Context, logger *slog.Logger, store string, ping func(context.Context) error) error {
	policy := retry.WithMaxRetries(constants.ConnectAttempts, retry.NewExponential(constants.ConnectBackoff))
	return until(ctx, policy, logger, store, ping)
}

func until(ctx context.Context, policy retry.Backoff, logger *slog.Logger, store string, ping func(context.Context) error) error {
	attempt := 0
	err := retry.Do(ctx, policy, func(ctx context.Context) error {
		attempt++
		if err := ping(ctx); err != nil {
			logger.Warn("store_unreachable",
				slog.String("store", store),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: unreachable after %d attempt(s): %w", store, attempt, err)
	}
	return nil
}
