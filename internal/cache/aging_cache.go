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

const agingReportKey = "finance:aging:report"

// AgingReportCache caches the aggregated invoice aging report.
type AgingReportCache interface {
	Get(ctx context.Context) (*domain.AgingReport, bool, error)
	Set(ctx context.Context, report *domain.AgingReport) error
	Invalidate(ctx context.Context) error
}

type redisAgingCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopAgingCache struct{}

// NewAgingReportCache returns a Redis-backed cache, or a noop cache when
// caching is disabled.
func NewAgingReportCache(cfg config.CacheConfig) (AgingReportCache, error) {
	if !cfg.Enabled {
		return &noopAgingCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return &redisAgingCache{client: client, ttl: ttl}, nil
}

func NewNoopAgingReportCache() AgingReportCache {
	return &noopAgingCache{}
}

func (c *redisAgingCache) Get(ctx context.Context) (*domain.AgingReport, bool, error) {
	payload, err := c.client.Get(ctx, agingReportKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var report domain.AgingReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("decode aging report cache: %w", err)
	}
	return &report, true, nil
}

func (c *redisAgingCache) Set(ctx context.Context, report *domain.AgingReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode aging report cache: %w", err)
	}
	if err := c.client.Set(ctx, agingReportKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisAgingCache) Invalidate(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, agingReportKey, scanBatchSize)
}

func (n *noopAgingCache) Get(ctx context.Context) (*domain.AgingReport, bool, error) {
	return nil, false, nil
}

func (n *noopAgingCache) Set(ctx context.Context, report *domain.AgingReport) error {
	return nil
}

func (n *noopAgingCache) Invalidate(ctx context.Context) error {
	return nil
}
