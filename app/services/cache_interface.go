package services

import (
	"context"

	"github.com/lowcountrylister/listing-service/app/models"
)

// CacheStats summarizes cache effectiveness for the admin endpoints.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// IResolutionCache caches DetectionResults keyed by the raw address.
// Caching is an optimization only: every cached value is recomputable
// deterministically from the directory, so losing the cache is never a
// correctness problem.
type IResolutionCache interface {
	// Get returns the cached result for an address, if any.
	Get(ctx context.Context, address string) (*models.DetectionResult, bool, error)

	// Set stores a result for an address.
	Set(ctx context.Context, address string, result *models.DetectionResult) error

	// Delete removes one address from the cache.
	Delete(ctx context.Context, address string) error

	// Clear drops the whole cache (used when directory data ships anew).
	Clear(ctx context.Context) error

	// GetStats reports hit/miss counters.
	GetStats(ctx context.Context) (*CacheStats, error)

	// Close releases any underlying connections.
	Close() error
}
