package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Cache is a best-effort JSON read-through cache over Redis. A miss, a
// marshalling problem or an unreachable Redis all degrade to recomputing;
// the cache never fails an analytics call.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func New(addr, password string, ttl time.Duration, log zerolog.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &Cache{client: client, ttl: ttl, log: log}
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache payload corrupt")
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *Cache) Close() error {
	return c.client.Close()
}
