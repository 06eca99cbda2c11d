// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/taibuivan/myflix/internal/platform/metrics"
)

// Cache is the byte cache the catalog reads through.
//
// Implemented by [redis.Cache].
type Cache interface {
	Get(context context.Context, key string) ([]byte, bool, error)
	Set(context context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedRepository wraps a [Repository] with a read-through cache.
//
// The catalog is immutable through the API, so entries only expire by TTL.
// Absent results are not cached. Cache failures are logged and the call
// falls through to the wrapped repository.
type CachedRepository struct {
	next    Repository
	cache   Cache
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewCachedRepository decorates next with cache. m may be nil.
func NewCachedRepository(next Repository, cache Cache, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *CachedRepository {
	return &CachedRepository{next: next, cache: cache, ttl: ttl, logger: logger, metrics: m}
}

func (repository *CachedRepository) ListMovies(context context.Context) ([]*Movie, error) {
	return readThrough(context, repository, "all", func() ([]*Movie, error) {
		return repository.next.ListMovies(context)
	})
}

func (repository *CachedRepository) GetMovie(context context.Context, id string) (*Movie, error) {
	return readThrough(context, repository, "id:"+id, func() (*Movie, error) {
		return repository.next.GetMovie(context, id)
	})
}

func (repository *CachedRepository) ListByGenre(context context.Context, genre string) ([]*Movie, error) {
	return readThrough(context, repository, "genre:"+genre, func() ([]*Movie, error) {
		return repository.next.ListByGenre(context, genre)
	})
}

func (repository *CachedRepository) GetDirector(context context.Context, name string) (*Director, error) {
	return readThrough(context, repository, "director:"+name, func() (*Director, error) {
		return repository.next.GetDirector(context, name)
	})
}

// readThrough serves key from the cache or loads and stores it.
func readThrough[T any](context context.Context, repository *CachedRepository, key string, load func() (T, error)) (T, error) {
	var cached T

	raw, found, err := repository.cache.Get(context, key)
	switch {
	case err != nil:
		repository.metrics.RecordCache(metrics.CacheError)
		repository.logger.WarnContext(context, "movie_cache_get_failed", slog.String("key", key), slog.String("error", err.Error()))
	case found:
		if err := json.Unmarshal(raw, &cached); err == nil {
			repository.metrics.RecordCache(metrics.CacheHit)
			return cached, nil
		}
		repository.metrics.RecordCache(metrics.CacheError)
	default:
		repository.metrics.RecordCache(metrics.CacheMiss)
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	// JSON "null" marks an absent item; leave it uncached
	encoded, err := json.Marshal(value)
	if err != nil || string(encoded) == "null" {
		return value, nil
	}

	if err := repository.cache.Set(context, key, encoded, repository.ttl); err != nil {
		repository.logger.WarnContext(context, "movie_cache_set_failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return value, nil
}
