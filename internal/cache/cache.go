package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"shelterapi/internal/config"
)

// Cache is a small JSON read-through cache used for hot listings.
// Implementations must be safe for concurrent use.
type Cache interface {
	// GetJSON unmarshals the cached value for key into v.
	// It returns false with a nil error on a cache miss.
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	// SetJSON stores v under key for the given TTL.
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	// DeletePrefix drops every key with the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

type redisCache struct {
	client *redis.Client
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisCache{client: client}, nil
}

func (c *redisCache) GetJSON(ctx context.Context, key string, v any) (bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

func (c *redisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

type noopCache struct{}

// NewNoop returns a cache that never hits. Used when Redis is not configured.
func NewNoop() Cache {
	return noopCache{}
}

func (noopCache) GetJSON(context.Context, string, any) (bool, error)       { return false, nil }
func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) DeletePrefix(context.Context, string) error                { return nil }
