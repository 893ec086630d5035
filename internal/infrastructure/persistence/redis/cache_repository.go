// Package redis provides the Redis-backed cache repository
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nutriplan/v1/internal/infrastructure/config"
	"github.com/nutriplan/v1/internal/infrastructure/monitoring"
	"github.com/nutriplan/v1/internal/ports/outbound"
)

// NewClient creates a Redis client from the configuration
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// CacheRepository implements the cache repository interface on Redis
type CacheRepository struct {
	client  *redis.Client
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(client *redis.Client, metrics *monitoring.Metrics, logger *zap.Logger) outbound.CacheRepository {
	return &CacheRepository{
		client:  client,
		metrics: metrics,
		logger:  logger.Named("redis-cache"),
	}
}

// Get retrieves a value. A missing key returns (nil, nil).
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.metrics.RecordCacheOperation("get", "miss")
			return nil, nil
		}
		r.logger.Debug("Cache get failed", zap.String("key", key), zap.Error(err))
		r.metrics.RecordCacheOperation("get", "error")
		return nil, err
	}

	r.metrics.RecordCacheOperation("get", "hit")
	return data, nil
}

// Set stores a value with a TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		r.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		r.metrics.RecordCacheOperation("set", "error")
		return err
	}
	r.metrics.RecordCacheOperation("set", "ok")
	return nil
}

// Delete removes a value
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Cache delete failed", zap.String("key", key), zap.Error(err))
		r.metrics.RecordCacheOperation("delete", "error")
		return err
	}
	r.metrics.RecordCacheOperation("delete", "ok")
	return nil
}

// Exists reports whether the key exists
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Cache exists check failed", zap.String("key", key), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}
