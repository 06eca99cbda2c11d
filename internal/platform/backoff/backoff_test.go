// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package backoff

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func fastPolicy(retries uint64) retry.Backoff {
	return retry.WithMaxRetries(retries, retry.NewConstant(time.Millisecond))
}

func TestUntil_RecoversAfterFailures(t *testing.T) {
	calls := 0
	err := until(context.Background(), fastPolicy(5), discard, "postgres", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestUntil_GivesUp(t *testing.T) {
	refused := errors.New("connection refused")
	calls := 0
	err := until(context.Background(), fastPolicy(2), discard, "redis", func(context.Context) error {
		calls++
		return refused
	})

	assert.ErrorIs(t, err, refused)
	assert.Contains(t, err.Error(), "redis: unreachable after 3 attempt(s)")
	assert.Equal(t, 3, calls)
}

func TestUntil_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := until(ctx, fastPolicy(10), discard, "mongo", func(context.Context) error {
		return errors.New("no primary")
	})

	assert.Error(t, err)
}
