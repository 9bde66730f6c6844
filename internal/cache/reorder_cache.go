package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/procuredash/backend-go/internal/config"
	"github.com/procuredash/backend-go/internal/domain"
	"github.com/redis/go-redis/v9"
)

const reorderDashboardKey = "inventory:reorder:dashboard"

// ReorderDashboardCache caches the reorder advisor dashboard.
type ReorderDashboardCache interface {
	Get(ctx context.Context) (*domain.ReorderDashboard, bool, error)
	Set(ctx context.Context, dashboard *domain.ReorderDashboard) error
	Invalidate(ctx context.Context) error
}

type redisReorderCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReorderCache struct{}

// NewReorderDashboardCache returns a Redis-backed cache, or a noop cache
// when caching is disabled.
func NewReorderDashboardCache(cfg config.CacheConfig) (ReorderDashboardCache, error) {
	if !cfg.Enabled {
		return &noopReorderCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return &redisReorderCache{client: client, ttl: ttl}, nil
}

func NewNoopReorderDashboardCache() ReorderDashboardCache {
	return &noopReorderCache{}
}

func (c *redisReorderCache) Get(ctx context.Context) (*domain.ReorderDashboard, bool, error) {
	payload, err := c.client.Get(ctx, reorderDashboardKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var dashboard domain.ReorderDashboard
	if err := json.Unmarshal(payload, &dashboard); err != nil {
		return nil, false, fmt.Errorf("decode reorder dashboard cache: %w", err)
	}
	return &dashboard, true, nil
}

func (c *redisReorderCache) Set(ctx context.Context, dashboard *domain.ReorderDashboard) error {
	payload, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("encode reorder dashboard cache: %w", err)
	}
	if err := c.client.Set(ctx, reorderDashboardKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReorderCache) Invalidate(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, reorderDashboardKey, scanBatchSize)
}

func (n *noopReorderCache) Get(ctx context.Context) (*domain.ReorderDashboard, bool, error) {
	return nil, false, nil
}

func (n *noopReorderCache) Set(ctx context.Context, dashboard *domain.ReorderDashboard) error {
	return nil
}

func (n *noopReorderCache) Invalidate(ctx context.Context) error {
	return nil
}
