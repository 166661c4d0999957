package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// MetricsCache stores JSON encoded reports in Redis. Callers embed the value
// of Version in their keys; RedisNotifier bumps it on every publish, so a
// change orphans every entry written for an older version.
type MetricsCache struct {
	client  *redis.Client
	channel string
	ttl     time.Duration
}

// NewMetricsCache creates a cache sharing the version counter of channel.
func NewMetricsCache(client *redis.Client, channel string, ttl time.Duration) *MetricsCache {
	return &MetricsCache{
		client:  client,
		channel: channel,
		ttl:     ttl,
	}
}

// Version returns the data version, 0 before the first publish.
func (c *MetricsCache) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(c.channel)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read data version: %w", err)
	}
	return version, nil
}

// Get decodes the cached value for key into dest.
func (c *MetricsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.entryKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return true, nil
}

// Set stores value under key until the TTL expires.
func (c *MetricsCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := c.client.Set(ctx, c.entryKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (c *MetricsCache) entryKey(key string) string {
	return c.channel + ":cache:" + key
}
