package service

import (
	"sync"
	"time"

	"github.com/ignatzorin/trustboard-backend/internal/goroutine"
)

// Cache keys for computed snapshots.
const (
	TrustMetricsCacheKey   = "trust-metrics"
	DashboardStatsCacheKey = "dashboard-stats"
)

// CacheService provides in-memory caching with TTL and invalidation support.
// Trust metrics are recomputed from full collection scans, so handlers cache
// the snapshot until the next generation run replaces the data.
type CacheService struct {
	mu    sync.RWMutex
	cache map[string]*cacheEntry
}

type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

// NewCacheService creates a new cache service.
func NewCacheService() *CacheService {
	cs := &CacheService{
		cache: make(map[string]*cacheEntry),
	}

	// Start background cleanup goroutine
	goroutine.SafeGo(cs.cleanup)

	return cs
}

// Get retrieves a value from cache.
func (cs *CacheService) Get(key string) (interface{}, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	entry, exists := cs.cache[key]
	if !exists {
		return nil, false
	}

	// Check if expired
	if time.Now().After(entry.expiresAt) {
		// Don't delete here, let cleanup handle it
		return nil, false
	}

	return entry.data, true
}

// Set stores a value in cache with TTL.
func (cs *CacheService) Set(key string, value interface{}, ttl time.Duration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.cache[key] = &cacheEntry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes a key from cache.
func (cs *CacheService) Delete(key string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.cache, key)
}

// InvalidateSnapshots drops all cached metric snapshots. Called after a
// generation run replaces the underlying collections.
func (cs *CacheService) InvalidateSnapshots() {
	cs.Delete(TrustMetricsCacheKey)
	cs.Delete(DashboardStatsCacheKey)
}

// cleanup removes expired entries periodically.
func (cs *CacheService) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cs.mu.Lock()
		now := time.Now()
		for key, entry := range cs.cache {
			if now.After(entry.expiresAt) {
				delete(cs.cache, key)
			}
		}
		cs.mu.Unlock()
	}
}
