package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/trustboard-backend/internal/dto"
	"github.com/ignatzorin/trustboard-backend/internal/http/handlers/common"
	"github.com/ignatzorin/trustboard-backend/internal/pkg/apperror"
	"github.com/ignatzorin/trustboard-backend/internal/repository"
)

// Ограничения выборки продавцов
const (
	defaultSellersLimit = 50
	maxSellersLimit     = 200
)

// SellersHandler отвечает за выборки по продавцам.
type SellersHandler struct {
	sellers *repository.SellerRepository
}

// NewSellersHandler создаёт экземпляр.
func NewSellersHandler(sellers *repository.SellerRepository) *SellersHandler {
	return &SellersHandler{sellers: sellers}
}

// GetSellersPerformance обрабатывает GET /api/sellers-performance.
// Возвращает топ продавцов по индексу доверия по убыванию.
func (h *SellersHandler) GetSellersPerformance(c *gin.Context) {
	limit := common.ParseIntQuery(c, "limit", defaultSellersLimit)
	if limit < 1 {
		limit = defaultSellersLimit
	}
	if limit > maxSellersLimit {
		limit = maxSellersLimit
	}

	sellers, err := h.sellers.TopByTrustIndex(c.Request.Context(), limit)
	if err != nil {
		common.RespondInternalError(c, "не удалось получить список продавцов")
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.SellersPerformanceResponse{
		Sellers: sellers,
		Count:   len(sellers),
	})
}

// GetSeller обрабатывает GET /api/sellers/:id.
func (h *SellersHandler) GetSeller(c *gin.Context) {
	sellerID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	seller, err := h.sellers.GetByID(c.Request.Context(), sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			common.RespondNotFound(c, "продавец не найден")
			return
		}
		// Ответ сформирует централизованный error handler.
		_ = c.Error(apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить продавца"))
		return
	}

	common.RespondJSON(c, http.StatusOK, seller)
}
