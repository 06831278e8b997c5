package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultCache is an optional shared cache for rendered result pages.
// Search traffic is read-only and heavily repeated (the frontend
// re-issues the same query per page), so short-TTL caching is safe.
// A nil *ResultCache is valid and always misses.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(redisURL string, ttl time.Duration) (*ResultCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &ResultCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

func (c *ResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *ResultCache) Set(ctx context.Context, key string, value []byte) {
	if c == nil {
		return
	}
	// Cache errors are ignored; the store stays the source of truth.
	c.client.Set(ctx, key, value, c.ttl)
}
