// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/taibuivan/myflix/internal/platform/config"
	"github.com/taibuivan/myflix/internal/platform/migration"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	var down int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Apply all pending PostgreSQL migrations from MIGRATION_PATH.
With --down N, roll back the last N migrations instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, down)
		},
	}

	cmd.Flags().IntVar(&down, "down", 0, "roll back this many migrations instead of applying")

	return cmd
}

func runMigrate(cmd *cobra.Command, down int) error {
	cfg, log, err := bootstrap(stdout)
	if err != nil {
		return err
	}

	if cfg.StoreDriver != config.DriverPostgres {
		return oops.Code("CONFIG_INVALID").Errorf("migrations apply to STORE_DRIVER=%s only", config.DriverPostgres)
	}

	if down > 0 {
		if err := migration.RunDown(cfg.DatabaseURL, cfg.MigrationPath, down, log); err != nil {
			return oops.Code("MIGRATION_FAILED").With("operation", "roll back migrations").With("steps", down).Wrap(err)
		}
		cmd.Printf("Rolled back %d migration(s)\n", down)
		return nil
	}

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
	}

	cmd.Println("Migrations completed successfully")
	return nil
}
