package services

import (
	"context"
	"testing"

	"github.com/lowcountrylister/listing-service/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLRUCache(t *testing.T, size int) *LRUCacheService {
	t.Helper()
	cache, err := NewLRUCacheService(size, zap.NewNop())
	require.NoError(t, err)
	return cache
}

func sampleResult(name string) *models.DetectionResult {
	return &models.DetectionResult{
		Neighborhood: &models.NeighborhoodRecord{Name: name},
		Confidence:   models.ConfidenceHigh,
		Method:       models.MethodZip,
	}
}

func TestLRUCache_GetSet(t *testing.T) {
	cache := newTestLRUCache(t, 10)
	ctx := context.Background()

	_, found, err := cache.Get(ctx, "45 Murray Blvd, 29401")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "45 Murray Blvd, 29401", sampleResult("Charleston Historic District")))

	got, found, err := cache.Get(ctx, "45 Murray Blvd, 29401")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Charleston Historic District", got.Neighborhood.Name)
}

func TestLRUCache_Delete(t *testing.T) {
	cache := newTestLRUCache(t, 10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", sampleResult("Mount Pleasant")))
	require.NoError(t, cache.Delete(ctx, "a"))

	_, found, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLRUCache_Clear(t *testing.T) {
	cache := newTestLRUCache(t, 10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", sampleResult("Mount Pleasant")))
	require.NoError(t, cache.Set(ctx, "b", sampleResult("West Ashley")))
	require.NoError(t, cache.Clear(ctx))

	stats, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalItems)
}

func TestLRUCache_EvictsBeyondCapacity(t *testing.T) {
	cache := newTestLRUCache(t, 2)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", sampleResult("Mount Pleasant")))
	require.NoError(t, cache.Set(ctx, "b", sampleResult("West Ashley")))
	require.NoError(t, cache.Set(ctx, "c", sampleResult("James Island")))

	_, found, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found, "oldest entry should be evicted")

	stats, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalItems)
}

func TestLRUCache_Stats(t *testing.T) {
	cache := newTestLRUCache(t, 10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", sampleResult("Mount Pleasant")))
	cache.Get(ctx, "a")
	cache.Get(ctx, "a")
	cache.Get(ctx, "missing")

	stats, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalHits)
	assert.Equal(t, int64(1), stats.TotalMiss)
	assert.Equal(t, int64(1), stats.TotalItems)
	assert.InDelta(t, 2.0/3.0, stats.HitRate, 1e-9)
}

func TestLRUCache_Close(t *testing.T) {
	cache := newTestLRUCache(t, 10)
	assert.NoError(t, cache.Close())
}
