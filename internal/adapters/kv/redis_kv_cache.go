package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the KVCache port. TTL expiry is
// delegated to Redis; an expired key reads as a plain miss.
type RedisKVCache struct {
	client *redis.Client
}

func NewRedisKVCache(client *redis.Client) *RedisKVCache {
	return &RedisKVCache{client: client}
}

// Fetch a cached value. Absent and expired keys report found=false.
func (c *RedisKVCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.client == nil {
		return nil, false, errors.New("kv cache: client is nil")
	}

	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv cache get %q: %w", key, err)
	}

	return value, true, nil
}

// Store a value under key for the given TTL, overwriting any previous
// entry wholesale.
func (c *RedisKVCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.client == nil {
		return errors.New("kv cache: client is nil")
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("kv cache set %q: %w", key, err)
	}

	return nil
}
