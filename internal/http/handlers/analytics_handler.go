package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/trustboard-backend/internal/dto"
	"github.com/ignatzorin/trustboard-backend/internal/http/handlers/common"
	"github.com/ignatzorin/trustboard-backend/internal/repository"
	"github.com/ignatzorin/trustboard-backend/internal/service"
)

// AnalyticsHandler отвечает за аналитические срезы и симуляцию политики.
type AnalyticsHandler struct {
	sellers  *repository.SellerRepository
	users    *repository.UserRepository
	disputes *repository.DisputeRepository
	policy   *service.PolicyService
}

// NewAnalyticsHandler создаёт экземпляр.
func NewAnalyticsHandler(
	sellers *repository.SellerRepository,
	users *repository.UserRepository,
	disputes *repository.DisputeRepository,
	policy *service.PolicyService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		sellers:  sellers,
		users:    users,
		disputes: disputes,
		policy:   policy,
	}
}

// GetCategoryAnalysis обрабатывает GET /api/category-analysis.
func (h *AnalyticsHandler) GetCategoryAnalysis(c *gin.Context) {
	stats, err := h.sellers.CategoryStats(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "не удалось построить срез по категориям")
		return
	}

	common.RespondJSON(c, http.StatusOK, gin.H{"categories": stats})
}

// GetRegionalAnalysis обрабатывает GET /api/regional-analysis.
func (h *AnalyticsHandler) GetRegionalAnalysis(c *gin.Context) {
	stats, err := h.users.RegionalStats(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "не удалось построить срез по регионам")
		return
	}

	common.RespondJSON(c, http.StatusOK, gin.H{"regions": stats})
}

// GetDisputeTrends обрабатывает GET /api/dispute-trends.
func (h *AnalyticsHandler) GetDisputeTrends(c *gin.Context) {
	trends, err := h.disputes.MonthlyTrends(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "не удалось построить динамику споров")
		return
	}

	common.RespondJSON(c, http.StatusOK, gin.H{"trends": trends})
}

// SimulatePolicy обрабатывает GET /api/policy-simulation.
// Пороги берутся из query-параметров; отсутствующие заменяются
// значениями по умолчанию, явный ноль — валидный порог.
func (h *AnalyticsHandler) SimulatePolicy(c *gin.Context) {
	var req dto.PolicySimulationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		common.RespondBadRequest(c, "ошибка валидации запроса: "+err.Error())
		return
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	result, err := h.policy.Simulate(c.Request.Context(), service.PolicyParams{
		MinFulfillmentRate: *req.MinFulfillmentRate,
		MaxComplaintRatio:  *req.MaxComplaintRatio,
		MinTrustIndex:      *req.MinTrustIndex,
	})
	if err != nil {
		common.RespondInternalError(c, "не удалось выполнить симуляцию политики")
		return
	}

	common.RespondJSON(c, http.StatusOK, result)
}
