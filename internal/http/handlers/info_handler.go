package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/trustboard-backend/internal/dto"
	"github.com/ignatzorin/trustboard-backend/internal/http/handlers/common"
)

// InfoHandler отвечает за корневой endpoint API.
type InfoHandler struct{}

// NewInfoHandler создаёт экземпляр.
func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// GetAPIInfo обрабатывает GET /api/.
func (h *InfoHandler) GetAPIInfo(c *gin.Context) {
	common.RespondJSON(c, http.StatusOK, dto.APIInfoResponse{
		Message: "User Trust & Experience Dashboard API",
		Version: "1.0",
		Endpoints: map[string]string{
			"generate_data":       "POST /api/generate-data",
			"trust_metrics":       "GET /api/trust-metrics",
			"dashboard_stats":     "GET /api/dashboard-stats",
			"sellers_performance": "GET /api/sellers-performance",
			"category_analysis":   "GET /api/category-analysis",
			"regional_analysis":   "GET /api/regional-analysis",
			"dispute_trends":      "GET /api/dispute-trends",
			"policy_simulation":   "GET /api/policy-simulation",
		},
	})
}
