// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/taibuivan/myflix/internal/movie"
	"github.com/taibuivan/myflix/pkg/slug"
)

// Default timeout for seed command.
const defaultSeedTimeout = 30 * time.Second

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Load movies from a JSON file into the catalog",
		Long: `Reads a JSON array of movies and inserts each one into the configured store.
Movies without an ImagePath get one derived from their title.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args[0], timeout)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaultSeedTimeout, "timeout for database operations (e.g., 30s, 1m)")

	return cmd
}

func runSeed(cmd *cobra.Command, path string, timeout time.Duration) error {
	movies, err := readSeedFile(path)
	if err != nil {
		return err
	}

	cfg, log, err := bootstrap(stdout)
	if err != nil {
		return err
	}

	// Use cmd.Context() to respect SIGINT/SIGTERM signals
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	backends, err := openStores(ctx, cfg, log, nil)
	if err != nil {
		return err
	}
	defer backends.Close()

	inserted, err := seedMovies(ctx, backends.catalog, movies)
	if err != nil {
		return err
	}

	cmd.Printf("Seeded %d movie(s) from %s\n", inserted, path)
	return nil
}

// readSeedFile decodes a JSON array of movies.
func readSeedFile(path string) ([]*movie.Movie, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Code("SEED_FAILED").With("operation", "read seed file").With("path", path).Wrap(err)
	}

	var movies []*movie.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, oops.Code("SEED_FAILED").With("operation", "parse seed file").With("path", path).Wrap(err)
	}
	return movies, nil
}

// seedMovies inserts movies in file order and returns how many were written.
func seedMovies(ctx context.Context, writer movie.Writer, movies []*movie.Movie) (int, error) {
	for i, entry := range movies {
		if entry.Title == "" {
			return i, oops.Code("SEED_FAILED").Errorf("movie #%d has no title", i+1)
		}
		if entry.ImagePath == "" {
			entry.ImagePath = fmt.Sprintf("%s.png", slug.From(entry.Title))
		}
		if err := writer.CreateMovie(ctx, entry); err != nil {
			return i, oops.Code("SEED_FAILED").With("operation", "create movie").With("title", entry.Title).Wrap(err)
		}
	}
	return len(movies), nil
}
