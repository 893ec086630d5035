// Package memory provides an in-memory cache repository implementation,
// used in development and tests when Redis is not available.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nutriplan/v1/internal/ports/outbound"
)

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

var _ outbound.CacheRepository = (*CacheRepository)(nil)

// CacheRepository implements the cache repository interface in process memory
type CacheRepository struct {
	data      map[string]cacheItem
	mutex     sync.RWMutex
	stop      chan struct{}
	closeOnce sync.Once
}

// NewCacheRepository creates a new in-memory cache repository. Call Close to
// stop the background expiry sweep.
func NewCacheRepository() *CacheRepository {
	repo := &CacheRepository{
		data: make(map[string]cacheItem),
		stop: make(chan struct{}),
	}
	go repo.cleanup()
	return repo
}

// Close stops the expiry sweep goroutine. Safe to call more than once.
func (r *CacheRepository) Close() {
	r.closeOnce.Do(func() {
		close(r.stop)
	})
}

// Get retrieves a value. A missing or expired key returns (nil, nil).
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mutex.RLock()
	item, exists := r.data[key]
	r.mutex.RUnlock()

	if !exists || time.Now().After(item.expiresAt) {
		return nil, nil
	}
	return item.value, nil
}

// Set stores a value with a TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	if expiration <= 0 {
		expiration = time.Hour
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.data[key] = cacheItem{
		value:     append([]byte(nil), value...),
		expiresAt: time.Now().Add(expiration),
	}
	return nil
}

// Delete removes a value
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.data, key)
	return nil
}

// Exists reports whether the key exists and has not expired
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	item, exists := r.data[key]
	return exists && time.Now().Before(item.expiresAt), nil
}

func (r *CacheRepository) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			now := time.Now()
			r.mutex.Lock()
			for key, item := range r.data {
				if now.After(item.expiresAt) {
					delete(r.data, key)
				}
			}
			r.mutex.Unlock()
		}
	}
}
