package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGenerateHandler_InvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &GenerateHandler{}
	r.POST("/generate-data", handler.GenerateData)

	req, _ := http.NewRequest("POST", "/generate-data", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateHandler_NegativeCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &GenerateHandler{}
	r.POST("/generate-data", handler.GenerateData)

	body := `{"num_users": -5}`
	req, _ := http.NewRequest("POST", "/generate-data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "num_users")
}

func TestGenerateHandler_ChunkedBodyIsBound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &GenerateHandler{}
	r.POST("/generate-data", handler.GenerateData)

	// Chunked-запрос: длина тела неизвестна (ContentLength = -1),
	// но тело обязано попасть в биндинг, а не в дефолты.
	body := `{"num_users": -5}`
	req, _ := http.NewRequest("POST", "/generate-data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "num_users")
}

func TestGenerateHandler_CountAboveLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &GenerateHandler{}
	r.POST("/generate-data", handler.GenerateData)

	body := `{"num_orders": 99999999}`
	req, _ := http.NewRequest("POST", "/generate-data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "num_orders")
}
