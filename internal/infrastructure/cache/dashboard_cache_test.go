package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoploss_quoting/internal/domain/entities"
)

type fakeStore struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestDashboardCache_RoundTrip(t *testing.T) {
	store := newFakeStore()
	c := NewDashboardCache(store, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "tenant-a")
	require.NoError(t, err)
	assert.False(t, ok)

	m := entities.DashboardMetrics{
		TotalGroups:         3,
		TotalPremiumInForce: 1250.5,
		QuotesByStatus:      map[string]int{"approved": 2},
		PremiumTrend:        []entities.PremiumTrendPoint{{Month: "2026-01", Premium: 1250.5}},
	}
	require.NoError(t, c.Set(ctx, "tenant-a", m))
	assert.Equal(t, time.Minute, store.ttls["stoploss:dashboard:tenant-a"])

	got, ok, err := c.Get(ctx, "tenant-a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, m, got)

	_, ok, err = c.Get(ctx, "tenant-b")
	require.NoError(t, err)
	assert.False(t, ok, "tenants must not share cache entries")
}

func TestDashboardCache_Errors(t *testing.T) {
	store := newFakeStore()
	c := NewDashboardCache(store, time.Minute)
	ctx := context.Background()

	store.getErr = errors.New("connection refused")
	_, ok, err := c.Get(ctx, "tenant-a")
	assert.Error(t, err)
	assert.False(t, ok)

	store.setErr = errors.New("connection refused")
	assert.Error(t, c.Set(ctx, "tenant-a", entities.DashboardMetrics{}))

	store.getErr = nil
	store.data[dashboardKey("tenant-c")] = "{not json"
	_, _, err = c.Get(ctx, "tenant-c")
	assert.Error(t, err)
}
