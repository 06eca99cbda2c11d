// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"log/slog"

	"github.com/samber/oops"

	"github.com/taibuivan/myflix/internal/api"
	"github.com/taibuivan/myflix/internal/movie"
	"github.com/taibuivan/myflix/internal/platform/config"
	"github.com/taibuivan/myflix/internal/platform/constants"
	"github.com/taibuivan/myflix/internal/platform/metrics"
	mongostore "github.com/taibuivan/myflix/internal/platform/mongo"
	pgstore "github.com/taibuivan/myflix/internal/platform/postgres"
	redisstore "github.com/taibuivan/myflix/internal/platform/redis"
	"github.com/taibuivan/myflix/internal/user"
)

// catalogStore is what the serve and seed commands need from the movie backend.
type catalogStore interface {
	movie.Repository
	movie.Writer
}

// stores holds the repositories for the configured driver together with
// their readiness checks and shutdown hooks.
type stores struct {
	movies  movie.Repository
	catalog catalogStore
	users   user.Repository
	checks  []api.Check
	closers []func()
}

// Close releases every connection in reverse order of opening.
func (backends *stores) Close() {
	for i := len(backends.closers) - 1; i >= 0; i-- {
		backends.closers[i]()
	}
}

/*
openStores connects to the backend selected by STORE_DRIVER.

When REDIS_URL is set the movie repository is wrapped in a read-through
cache; the raw repository stays available as catalog for writes.
*/
func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger, m *metrics.Metrics) (*stores, error) {
	backends := &stores{}

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, database, err := mongostore.NewClient(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
		if err != nil {
			return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "connect to mongo").Wrap(err)
		}
		backends.closers = append(backends.closers, func() {
			log.Info("closing mongo client")
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("mongo disconnect error", slog.Any("error", err))
			}
		})

		users := user.NewMongoRepository(database)
		if err := users.EnsureIndexes(ctx); err != nil {
			backends.Close()
			return nil, oops.Code("DB_INDEX_FAILED").With("operation", "ensure user indexes").Wrap(err)
		}

		backends.catalog = movie.NewMongoRepository(database)
		backends.users = users
		backends.checks = append(backends.checks, api.Check{
			Name: "mongo",
			Ping: func(ctx context.Context) error { return mongostore.Ping(ctx, client) },
		})

	default:
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "connect to postgres").Wrap(err)
		}
		backends.closers = append(backends.closers, func() {
			log.Info("closing postgres pool")
			pool.Close()
		})

		backends.catalog = movie.NewPostgresRepository(pool)
		backends.users = user.NewPostgresRepository(pool)
		backends.checks = append(backends.checks, api.Check{
			Name: "postgres",
			Ping: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		})
	}

	backends.movies = backends.catalog

	if cfg.CacheEnabled() {
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		if err != nil {
			backends.Close()
			return nil, oops.Code("CACHE_CONNECT_FAILED").With("operation", "connect to redis").Wrap(err)
		}
		backends.closers = append(backends.closers, func() {
			log.Info("closing redis client")
			if err := rdb.Close(); err != nil {
				log.Error("redis close error", slog.Any("error", err))
			}
		})

		cache := redisstore.NewCache(rdb, constants.RedisPrefixMovies)
		backends.movies = movie.NewCachedRepository(backends.catalog, cache, cfg.CacheTTL, log, m)
		backends.checks = append(backends.checks, api.Check{Name: "redis", Ping: cache.Ping})
	}

	return backends, nil
}
