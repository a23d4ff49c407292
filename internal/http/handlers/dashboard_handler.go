package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/trustboard-backend/internal/dto"
	"github.com/ignatzorin/trustboard-backend/internal/http/handlers/common"
	"github.com/ignatzorin/trustboard-backend/internal/repository"
	"github.com/ignatzorin/trustboard-backend/internal/service"
)

// Период «недавней» активности для сводки дашборда.
const recentActivityWindow = 30 * 24 * time.Hour

// DashboardHandler собирает агрегированную сводку для главного экрана.
type DashboardHandler struct {
	metrics  *service.MetricsService
	users    *repository.UserRepository
	sellers  *repository.SellerRepository
	orders   *repository.OrderRepository
	reviews  *repository.ReviewRepository
	disputes *repository.DisputeRepository
	cache    *service.CacheService
	cacheTTL time.Duration
}

// NewDashboardHandler создаёт экземпляр.
func NewDashboardHandler(
	metrics *service.MetricsService,
	users *repository.UserRepository,
	sellers *repository.SellerRepository,
	orders *repository.OrderRepository,
	reviews *repository.ReviewRepository,
	disputes *repository.DisputeRepository,
	cache *service.CacheService,
	cacheTTL time.Duration,
) *DashboardHandler {
	return &DashboardHandler{
		metrics:  metrics,
		users:    users,
		sellers:  sellers,
		orders:   orders,
		reviews:  reviews,
		disputes: disputes,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GetDashboardStats обрабатывает GET /api/dashboard-stats.
// Возвращает метрики доверия вместе с размерами коллекций одним запросом.
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	if cached, found := h.cache.Get(service.DashboardStatsCacheKey); found {
		if stats, ok := cached.(*dto.DashboardStatsResponse); ok {
			common.RespondJSON(c, http.StatusOK, stats)
			return
		}
	}

	ctx := c.Request.Context()

	// Метрики считаются по полным коллекциям, счётчики идут параллельно.
	type countsResult struct {
		users, sellers, orders, reviews, disputes int
		recentOrders, recentDisputes              int
		err                                       error
	}

	countsChan := make(chan countsResult, 1)
	go func() {
		result := countsResult{}
		since := time.Now().Add(-recentActivityWindow)

		if result.users, result.err = h.users.Count(ctx); result.err != nil {
			countsChan <- result
			return
		}
		if result.sellers, result.err = h.sellers.Count(ctx); result.err != nil {
			countsChan <- result
			return
		}
		if result.orders, result.err = h.orders.Count(ctx); result.err != nil {
			countsChan <- result
			return
		}
		if result.reviews, result.err = h.reviews.Count(ctx); result.err != nil {
			countsChan <- result
			return
		}
		if result.disputes, result.err = h.disputes.Count(ctx); result.err != nil {
			countsChan <- result
			return
		}
		if result.recentOrders, result.err = h.orders.CountSince(ctx, since); result.err != nil {
			countsChan <- result
			return
		}
		result.recentDisputes, result.err = h.disputes.CountSince(ctx, since)
		countsChan <- result
	}()

	metrics, err := h.metrics.ComputeTrustMetrics(ctx)
	if err != nil {
		common.RespondInternalError(c, "не удалось рассчитать метрики доверия")
		return
	}

	counts := <-countsChan
	if counts.err != nil {
		common.RespondInternalError(c, "не удалось получить статистику коллекций")
		return
	}

	stats := &dto.DashboardStatsResponse{
		Metrics:        *metrics,
		TotalUsers:     counts.users,
		TotalSellers:   counts.sellers,
		TotalOrders:    counts.orders,
		TotalReviews:   counts.reviews,
		TotalDisputes:  counts.disputes,
		RecentOrders:   counts.recentOrders,
		RecentDisputes: counts.recentDisputes,
	}

	h.cache.Set(service.DashboardStatsCacheKey, stats, h.cacheTTL)

	common.RespondJSON(c, http.StatusOK, stats)
}
