// Package cache provides an optional redis-backed read cache for hot
// endpoints. A nil *Cache is valid and disables caching.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache wraps a redis client with JSON get/set helpers.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis at addr. It returns an error when the server is
// unreachable so a misconfigured deployment fails fast.
func New(ctx context.Context, addr string, db int, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &Cache{client: client, ttl: ttl}, nil
}

// Get loads the cached value for key into target. The second return is
// false on a miss, on any redis error, or when the cache is disabled.
func (c *Cache) Get(ctx context.Context, key string, target interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, target) == nil
}

// Set stores value under key for the cache TTL. Failures are ignored; the
// cache is best-effort.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// Close releases the redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
