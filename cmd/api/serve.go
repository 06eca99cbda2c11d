// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/taibuivan/myflix/internal/api"
	"github.com/taibuivan/myflix/internal/auth"
	"github.com/taibuivan/myflix/internal/movie"
	"github.com/taibuivan/myflix/internal/platform/constants"
	"github.com/taibuivan/myflix/internal/platform/metrics"
	"github.com/taibuivan/myflix/internal/platform/sec"
	"github.com/taibuivan/myflix/internal/user"
)

// startupTimeout bounds connecting to every backing store so misconfiguration
// is caught quickly rather than hanging indefinitely.
const startupTimeout = 30 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Connect to the configured store (and Redis when REDIS_URL is set),
then serve the API until SIGINT or SIGTERM.`,
		RunE: runServe,
	}
}

/*
runServe is the server startup sequence.

# Startup Sequence

 1. Load configuration and build the logger.
 2. Connect to the configured store (and Redis if enabled).
 3. Wire services and HTTP handlers.
 4. Start HTTP server with graceful shutdown.
*/
func runServe(cmd *cobra.Command, _ []string) error {
	// ── 1. Configuration & Logger ─────────────────────────────────────────
	cfg, log, err := bootstrap(stdout)
	if err != nil {
		return err
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store", cfg.StoreDriver),
		slog.Bool("cache", cfg.CacheEnabled()),
	)

	// ── 2. Backing Stores ─────────────────────────────────────────────────
	m := metrics.New()

	startupCtx, startupCancel := context.WithTimeout(cmd.Context(), startupTimeout)
	defer startupCancel()

	backends, err := openStores(startupCtx, cfg, log, m)
	if err != nil {
		return err
	}
	defer backends.Close()

	// ── 3. Domain Wiring ──────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("operation", "initialize token service").Wrap(err)
	}

	liveness, readiness := api.NewHealthHandlers(backends.checks, log)

	userService := user.NewService(backends.users, log)
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(auth.NewService(backends.users, tokens, cfg.TokenTTL, m)),
		Users:     user.NewHandler(userService),
		Movies:    movie.NewHandler(movie.NewService(backends.movies, log)),
	}

	// ── 4. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, m, handlers)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-cmd.Context().Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		return oops.Code("SERVER_FAILED").With("operation", "listen").Wrap(err)
	}

	// Give in-flight requests enough time to complete.
	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return oops.Code("SHUTDOWN_FAILED").With("operation", "shutdown").Wrap(err)
	}

	log.Info("server_stopped_cleanly")
	return nil
}
