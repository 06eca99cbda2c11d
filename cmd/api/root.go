// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/taibuivan/myflix/internal/platform/config"
	"github.com/taibuivan/myflix/internal/platform/constants"
)

// NewRootCmd creates the root command. Without a subcommand it serves HTTP.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "myflix",
		Short: "Myflix movie catalog API",
		Long: `Myflix serves a movie catalog and per-user favorites over a JSON REST API.
Configuration is read from the environment (see internal/platform/config).`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}

// bootstrap loads configuration and builds the process logger.
//
// The logger writes JSON to out, tags every record with the app name and is
// raised to debug level when DEBUG=true.
func bootstrap(out io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, oops.Code("CONFIG_INVALID").With("operation", "load configuration").Wrap(err)
	}
	return cfg, newLogger(out, cfg.Debug), nil
}

func newLogger(out io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})).
		With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)
	return log
}

// stdout is swapped in tests.
var stdout io.Writer = os.Stdout
