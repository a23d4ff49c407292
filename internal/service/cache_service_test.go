package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/trustboard-backend/internal/models"
)

func TestCacheService_SetGet(t *testing.T) {
	cs := NewCacheService()

	metrics := &models.TrustMetrics{TrustIndex: 85.0}
	cs.Set(TrustMetricsCacheKey, metrics, time.Minute)

	cached, found := cs.Get(TrustMetricsCacheKey)
	require.True(t, found)
	assert.Equal(t, metrics, cached)
}

func TestCacheService_GetMissing(t *testing.T) {
	cs := NewCacheService()

	_, found := cs.Get("unknown-key")
	assert.False(t, found)
}

func TestCacheService_Expiry(t *testing.T) {
	cs := NewCacheService()

	cs.Set("key", "value", -time.Second)

	_, found := cs.Get("key")
	assert.False(t, found)
}

func TestCacheService_Delete(t *testing.T) {
	cs := NewCacheService()

	cs.Set("key", "value", time.Minute)
	cs.Delete("key")

	_, found := cs.Get("key")
	assert.False(t, found)
}

func TestCacheService_InvalidateSnapshots(t *testing.T) {
	cs := NewCacheService()

	cs.Set(TrustMetricsCacheKey, &models.TrustMetrics{}, time.Minute)
	cs.Set(DashboardStatsCacheKey, "stats", time.Minute)
	cs.Set("other", "value", time.Minute)

	cs.InvalidateSnapshots()

	_, found := cs.Get(TrustMetricsCacheKey)
	assert.False(t, found)
	_, found = cs.Get(DashboardStatsCacheKey)
	assert.False(t, found)

	// Посторонние ключи не затрагиваются.
	_, found = cs.Get("other")
	assert.True(t, found)
}
