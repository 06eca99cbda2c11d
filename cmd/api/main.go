// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Myflix HTTP API server and its
// operational subcommands (migrate, seed).
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/myflix/internal/platform/constants"
)

// Version information set at build time.
var (
	commit = "unknown"
	date   = "unknown"
)

func main() {
	// Cancelled on SIGINT/SIGTERM; every subcommand inherits it via cmd.Context().
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", constants.AppVersion, commit, date)

	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
