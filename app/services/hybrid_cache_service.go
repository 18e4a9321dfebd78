package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lowcountrylister/listing-service/app/models"
	"go.uber.org/zap"
)

// HybridCacheService layers the in-process LRU (L1) over Redis (L2).
// Reads fall through L1 to L2 and promote hits back into L1; writes go to
// both. Redis failures degrade to L1-only behavior rather than failing
// the request.
type HybridCacheService struct {
	l1     *LRUCacheService
	l2     *RedisCacheService
	logger *zap.Logger
}

// NewHybridCacheService creates the layered cache.
func NewHybridCacheService(l1 *LRUCacheService, l2 *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{l1: l1, l2: l2, logger: logger}
}

// Get tries L1 first, then L2, promoting L2 hits into L1 in the
// background.
func (hcs *HybridCacheService) Get(ctx context.Context, address string) (*models.DetectionResult, bool, error) {
	result, found, err := hcs.l1.Get(ctx, address)
	if err == nil && found {
		return result, true, nil
	}

	result, found, err = hcs.l2.Get(ctx, address)
	if err != nil {
		hcs.logger.Warn("redis cache error, serving without L2", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := hcs.l1.Set(bgCtx, address, result); err != nil {
			hcs.logger.Warn("L2->L1 promotion failed", zap.Error(err))
		}
	}()

	hcs.logger.Debug("L2 cache hit", zap.String("address", address))
	return result, true, nil
}

// Set writes to both layers; an L2 failure is logged, not returned.
func (hcs *HybridCacheService) Set(ctx context.Context, address string, result *models.DetectionResult) error {
	if err := hcs.l1.Set(ctx, address, result); err != nil {
		return err
	}
	if err := hcs.l2.Set(ctx, address, result); err != nil {
		hcs.logger.Warn("redis cache set failed", zap.Error(err))
	}
	return nil
}

// Delete removes the address from both layers.
func (hcs *HybridCacheService) Delete(ctx context.Context, address string) error {
	err1 := hcs.l1.Delete(ctx, address)
	err2 := hcs.l2.Delete(ctx, address)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("delete errors: %v, %v", err1, err2)
	}
	return nil
}

// Clear drops both layers.
func (hcs *HybridCacheService) Clear(ctx context.Context) error {
	err1 := hcs.l1.Clear(ctx)
	err2 := hcs.l2.Clear(ctx)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("clear errors: %v, %v", err1, err2)
	}
	return nil
}

// GetStats combines counters from both layers.
func (hcs *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	l1Stats, err1 := hcs.l1.GetStats(ctx)
	l2Stats, err2 := hcs.l2.GetStats(ctx)

	if err1 != nil && err2 != nil {
		return nil, fmt.Errorf("both cache layers failed: %v, %v", err1, err2)
	}
	if err2 != nil {
		return l1Stats, nil
	}
	if err1 != nil {
		return l2Stats, nil
	}

	combined := &CacheStats{
		TotalHits:  l1Stats.TotalHits + l2Stats.TotalHits,
		TotalMiss:  l1Stats.TotalMiss + l2Stats.TotalMiss,
		TotalItems: l1Stats.TotalItems + l2Stats.TotalItems,
	}
	if total := combined.TotalHits + combined.TotalMiss; total > 0 {
		combined.HitRate = float64(combined.TotalHits) / float64(total)
	}
	return combined, nil
}

// Close closes both layers.
func (hcs *HybridCacheService) Close() error {
	err1 := hcs.l1.Close()
	err2 := hcs.l2.Close()
	if err1 != nil || err2 != nil {
		return fmt.Errorf("close errors: %v, %v", err1, err2)
	}
	return nil
}
