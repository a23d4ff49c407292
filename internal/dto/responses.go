package dto

import (
	"github.com/ignatzorin/trustboard-backend/internal/models"
)

// GenerateDataResponse — итог генерации нового снапшота.
type GenerateDataResponse struct {
	Message string                 `json:"message"`
	Seed    int64                  `json:"seed"`
	Stats   models.GenerationStats `json:"stats"`
}

// DashboardStatsResponse — сводка для главного экрана дашборда.
type DashboardStatsResponse struct {
	Metrics        models.TrustMetrics `json:"metrics"`
	TotalUsers     int                 `json:"total_users"`
	TotalSellers   int                 `json:"total_sellers"`
	TotalOrders    int                 `json:"total_orders"`
	TotalReviews   int                 `json:"total_reviews"`
	TotalDisputes  int                 `json:"total_disputes"`
	RecentOrders   int                 `json:"recent_orders"`
	RecentDisputes int                 `json:"recent_disputes"`
}

// SellersPerformanceResponse — топ продавцов по индексу доверия.
type SellersPerformanceResponse struct {
	Sellers []models.Seller `json:"sellers"`
	Count   int             `json:"count"`
}

// APIInfoResponse — описание API в корне /api/.
type APIInfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
