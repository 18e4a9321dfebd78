package services

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lowcountrylister/listing-service/app/models"
	"go.uber.org/zap"
)

// LRUCacheService is the in-process L1 cache for resolution results.
type LRUCacheService struct {
	cache  *lru.Cache[string, *models.DetectionResult]
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewLRUCacheService creates an L1 cache holding up to size results.
func NewLRUCacheService(size int, logger *zap.Logger) (*LRUCacheService, error) {
	cache, err := lru.New[string, *models.DetectionResult](size)
	if err != nil {
		return nil, fmt.Errorf("create LRU cache: %w", err)
	}
	return &LRUCacheService{cache: cache, logger: logger}, nil
}

// Get returns the cached result for an address, if any.
func (lcs *LRUCacheService) Get(_ context.Context, address string) (*models.DetectionResult, bool, error) {
	result, found := lcs.cache.Get(address)
	if !found {
		lcs.misses.Add(1)
		return nil, false, nil
	}
	lcs.hits.Add(1)
	return result, true, nil
}

// Set stores a result for an address.
func (lcs *LRUCacheService) Set(_ context.Context, address string, result *models.DetectionResult) error {
	lcs.cache.Add(address, result)
	return nil
}

// Delete removes one address from the cache.
func (lcs *LRUCacheService) Delete(_ context.Context, address string) error {
	lcs.cache.Remove(address)
	return nil
}

// Clear drops the whole cache.
func (lcs *LRUCacheService) Clear(_ context.Context) error {
	lcs.cache.Purge()
	lcs.logger.Info("cleared LRU cache")
	return nil
}

// GetStats reports hit/miss counters.
func (lcs *LRUCacheService) GetStats(_ context.Context) (*CacheStats, error) {
	hits := lcs.hits.Load()
	misses := lcs.misses.Load()
	total := hits + misses

	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(lcs.cache.Len()),
	}
	if total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

// Close is a no-op for the in-process cache.
func (lcs *LRUCacheService) Close() error {
	return nil
}
