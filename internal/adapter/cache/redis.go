// Package cache provides the redis-backed listing cache. The cache is an
// injected component: the process bootstrap owns connect and close, and a nil
// cache simply means every read hits the store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
	"github.com/adarshtmg2060/todo-app/internal/core/ports"
)

const (
	keyPrefix  = "todos:"
	DefaultTTL = time.Hour
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.ListingCache = (*RedisCache)(nil)

// Connect opens a redis client from a URL and verifies the connection.
func Connect(ctx context.Context, url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return New(client, ttl), nil
}

func New(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetListing(ctx context.Context, key string) ([]domain.Todo, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	var todos []domain.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal error: %w", err)
	}

	return todos, true, nil
}

func (c *RedisCache) SetListing(ctx context.Context, key string, todos []domain.Todo) error {
	data, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	return nil
}

// InvalidateListings removes every cached listing so no stale read can be
// served after a write.
func (c *RedisCache) InvalidateListings(ctx context.Context) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan error: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache delete error: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			return nil
		}
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
