package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateCache stores rate tables between lookups
type RateCache interface {
	Get(ctx context.Context, base string) (Rates, bool, error)
	Set(ctx context.Context, base string, rates Rates, ttl time.Duration) error
}

// RedisRateCache keeps rate tables as JSON strings in Redis
type RedisRateCache struct {
	client *redis.Client
}

// NewRedisRateCache wraps an existing client
func NewRedisRateCache(client *redis.Client) *RedisRateCache {
	return &RedisRateCache{client: client}
}

// NewRedisClient connects to Redis and verifies the connection with a ping
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func rateKey(base string) string {
	return "fx:rates:" + base
}

// Get returns the cached rates; a miss is (nil, false, nil)
func (c *RedisRateCache) Get(ctx context.Context, base string) (Rates, bool, error) {
	raw, err := c.client.Get(ctx, rateKey(base)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached rates: %w", err)
	}

	var rates Rates
	if err := json.Unmarshal(raw, &rates); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached rates: %w", err)
	}
	return rates, true, nil
}

// Set stores rates for ttl
func (c *RedisRateCache) Set(ctx context.Context, base string, rates Rates, ttl time.Duration) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("failed to encode rates: %w", err)
	}
	if err := c.client.Set(ctx, rateKey(base), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache rates: %w", err)
	}
	return nil
}
