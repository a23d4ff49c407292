package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/trustboard-backend/internal/dto"
	"github.com/ignatzorin/trustboard-backend/internal/http/handlers/common"
	"github.com/ignatzorin/trustboard-backend/internal/logger"
	"github.com/ignatzorin/trustboard-backend/internal/service"
)

// GenerateHandler отвечает за перегенерацию синтетического снапшота данных.
type GenerateHandler struct {
	generator *service.GeneratorService
	cache     *service.CacheService
}

// NewGenerateHandler создаёт экземпляр.
func NewGenerateHandler(generator *service.GeneratorService, cache *service.CacheService) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		cache:     cache,
	}
}

// GenerateData обрабатывает POST /api/generate-data.
// Пустое тело запроса допустимо: используются объёмы по умолчанию.
func (h *GenerateHandler) GenerateData(c *gin.Context) {
	var req dto.GenerateDataRequest
	// ContentLength == -1 — chunked-запрос, тело есть, длина неизвестна.
	// EOF при чтении означает отсутствие тела и ошибкой не считается.
	if c.Request.ContentLength != 0 {
		if err := common.BindAndValidate(c, &req); err != nil && !errors.Is(err, io.EOF) {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	seed := *req.Seed

	stats, err := h.generator.Generate(c.Request.Context(), service.GenerationRequest{
		NumUsers:    req.NumUsers,
		NumSellers:  req.NumSellers,
		NumOrders:   req.NumOrders,
		NumReviews:  req.NumReviews,
		NumDisputes: req.NumDisputes,
		Seed:        seed,
	})
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"seed":  seed,
				"error": err.Error(),
			}).Error("Не удалось сгенерировать снапшот данных")
		}
		common.RespondInternalError(c, "не удалось сгенерировать данные")
		return
	}

	// Старый снапшот заменён, кэшированные метрики больше не актуальны.
	h.cache.InvalidateSnapshots()

	common.RespondJSON(c, http.StatusOK, dto.GenerateDataResponse{
		Message: "данные успешно сгенерированы",
		Seed:    seed,
		Stats:   *stats,
	})
}
