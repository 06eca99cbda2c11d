// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a namespaced byte cache on top of a Redis client.
type Cache struct {
	client redis.UniversalClient
	prefix string
}

// NewCache returns a cache whose keys are all prefixed with prefix.
func NewCache(client redis.UniversalClient, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

// Get returns the cached value. A missing key is reported as found=false
// with a nil error.
func (cache *Cache) Get(context stdctx.Context, key string) ([]byte, bool, error) {
	value, err := cache.client.Get(context, cache.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis_cache_get_failed: %w", err)
	}
	return value, true, nil
}

// Set stores value under key for ttl.
func (cache *Cache) Set(context stdctx.Context, key string, value []byte, ttl time.Duration) error {
	if err := cache.client.Set(context, cache.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis_cache_set_failed: %w", err)
	}
	return nil
}

// Ping checks the underlying client.
func (cache *Cache) Ping(context stdctx.Context) error {
	return Ping(context, cache.client)
}
