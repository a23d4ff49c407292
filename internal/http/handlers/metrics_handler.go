package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/trustboard-backend/internal/http/handlers/common"
	"github.com/ignatzorin/trustboard-backend/internal/models"
	"github.com/ignatzorin/trustboard-backend/internal/service"
)

// MetricsHandler отвечает за сводные метрики доверия.
type MetricsHandler struct {
	metrics  *service.MetricsService
	cache    *service.CacheService
	cacheTTL time.Duration
}

// NewMetricsHandler создаёт экземпляр.
func NewMetricsHandler(metrics *service.MetricsService, cache *service.CacheService, cacheTTL time.Duration) *MetricsHandler {
	return &MetricsHandler{
		metrics:  metrics,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GetTrustMetrics обрабатывает GET /api/trust-metrics.
// Расчёт идёт по полным коллекциям, поэтому результат кэшируется.
func (h *MetricsHandler) GetTrustMetrics(c *gin.Context) {
	if cached, found := h.cache.Get(service.TrustMetricsCacheKey); found {
		if metrics, ok := cached.(*models.TrustMetrics); ok {
			common.RespondJSON(c, http.StatusOK, metrics)
			return
		}
	}

	metrics, err := h.metrics.ComputeTrustMetrics(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "не удалось рассчитать метрики доверия")
		return
	}

	h.cache.Set(service.TrustMetricsCacheKey, metrics, h.cacheTTL)

	common.RespondJSON(c, http.StatusOK, metrics)
}
