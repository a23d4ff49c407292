package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/trustboard-backend/internal/config"
	"github.com/ignatzorin/trustboard-backend/internal/http/handlers"
	"github.com/ignatzorin/trustboard-backend/internal/http/middleware"
)

// SetupRouter собирает HTTP роутер со всеми маршрутами дашборда.
func SetupRouter(
	cfg *config.Config,
	infoHandler *handlers.InfoHandler,
	generateHandler *handlers.GenerateHandler,
	metricsHandler *handlers.MetricsHandler,
	dashboardHandler *handlers.DashboardHandler,
	sellersHandler *handlers.SellersHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	api.GET("/", infoHandler.GetAPIInfo)

	// Генерация — самый тяжёлый endpoint, ограничиваем частоту вызовов.
	generateRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	api.POST("/generate-data", generateRateLimit, generateHandler.GenerateData)

	// Метрики и сводки
	api.GET("/trust-metrics", metricsHandler.GetTrustMetrics)
	api.GET("/dashboard-stats", dashboardHandler.GetDashboardStats)

	// Продавцы
	api.GET("/sellers-performance", sellersHandler.GetSellersPerformance)
	api.GET("/sellers/:id", middleware.UUIDValidator("id"), sellersHandler.GetSeller)

	// Аналитические срезы
	api.GET("/category-analysis", analyticsHandler.GetCategoryAnalysis)
	api.GET("/regional-analysis", analyticsHandler.GetRegionalAnalysis)
	api.GET("/dispute-trends", analyticsHandler.GetDisputeTrends)
	api.GET("/policy-simulation", analyticsHandler.SimulatePolicy)

	return r
}
