package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stoploss_quoting/internal/domain/entities"
)

const dashboardKeyPrefix = "stoploss:dashboard:"

// kvStore is the subset of *redis.Client the cache needs.
type kvStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// DashboardCache stores tenant dashboard metrics as JSON with a fixed TTL.
type DashboardCache struct {
	client kvStore
	ttl    time.Duration
}

func NewDashboardCache(client kvStore, ttl time.Duration) *DashboardCache {
	return &DashboardCache{client: client, ttl: ttl}
}

func dashboardKey(tenantID string) string {
	return dashboardKeyPrefix + tenantID
}

// Get returns ok=false on a cache miss.
func (c *DashboardCache) Get(ctx context.Context, tenantID string) (entities.DashboardMetrics, bool, error) {
	raw, err := c.client.Get(ctx, dashboardKey(tenantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.DashboardMetrics{}, false, nil
		}
		return entities.DashboardMetrics{}, false, fmt.Errorf("failed to get dashboard: %w", err)
	}

	var m entities.DashboardMetrics
	if err := json.Unmarshal(raw, &m); err != nil {
		return entities.DashboardMetrics{}, false, fmt.Errorf("failed to unmarshal dashboard: %w", err)
	}
	return m, true, nil
}

func (c *DashboardCache) Set(ctx context.Context, tenantID string, m entities.DashboardMetrics) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard: %w", err)
	}
	if err := c.client.Set(ctx, dashboardKey(tenantID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store dashboard: %w", err)
	}
	return nil
}
