package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	reviewStatsKey = "reviews:stats"
	ReviewStatsTTL = 5 * time.Minute
)

// RedisStatsCache keeps the latest review statistics snapshot so the public
// rating widget does not aggregate on every page view.
type RedisStatsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{Client: client, TTL: ReviewStatsTTL}
}

// GetStats returns nil without error on a cache miss.
func (c *RedisStatsCache) GetStats(ctx context.Context) (*domain.ReviewStats, error) {
	raw, err := c.Client.Get(ctx, reviewStatsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats domain.ReviewStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *RedisStatsCache) SetStats(ctx context.Context, stats *domain.ReviewStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, reviewStatsKey, raw, c.TTL).Err()
}

func (c *RedisStatsCache) InvalidateStats(ctx context.Context) error {
	return c.Client.Del(ctx, reviewStatsKey).Err()
}
