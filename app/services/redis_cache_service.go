package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lowcountrylister/listing-service/app/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCacheService is the optional shared L2 cache for resolution
// results. Strictly a cache: entries carry a TTL and the store is never a
// source of truth.
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisCacheService connects to Redis and verifies the connection.
func NewRedisCacheService(redisURL string, ttl time.Duration, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "lister:resolve:",
		ttl:    ttl,
	}, nil
}

// Get returns the cached result for an address, if any.
func (rcs *RedisCacheService) Get(ctx context.Context, address string) (*models.DetectionResult, bool, error) {
	val, err := rcs.client.Get(ctx, rcs.prefix+address).Result()
	if err == redis.Nil {
		rcs.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var result models.DetectionResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		rcs.logger.Error("corrupt cache entry", zap.Error(err), zap.String("address", address))
		return nil, false, err
	}

	rcs.hits.Add(1)
	rcs.logger.Debug("redis cache hit", zap.String("address", address))
	return &result, true, nil
}

// Set stores a result for an address with the configured TTL.
func (rcs *RedisCacheService) Set(ctx context.Context, address string, result *models.DetectionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := rcs.client.Set(ctx, rcs.prefix+address, data, rcs.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes one address from the cache.
func (rcs *RedisCacheService) Delete(ctx context.Context, address string) error {
	return rcs.client.Del(ctx, rcs.prefix+address).Err()
}

// Clear drops every cached resolution.
func (rcs *RedisCacheService) Clear(ctx context.Context) error {
	keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("list cache keys: %w", err)
	}
	if len(keys) > 0 {
		if err := rcs.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("delete cache keys: %w", err)
		}
	}
	rcs.logger.Info("cleared redis cache", zap.Int("keys_deleted", len(keys)))
	return nil
}

// GetStats reports hit/miss counters and the current key count.
func (rcs *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := rcs.hits.Load()
	misses := rcs.misses.Load()
	total := hits + misses

	stats := &CacheStats{
		TotalHits: hits,
		TotalMiss: misses,
	}
	if total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	if keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result(); err == nil {
		stats.TotalItems = int64(len(keys))
	}
	return stats, nil
}

// Close closes the Redis connection.
func (rcs *RedisCacheService) Close() error {
	return rcs.client.Close()
}
