package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrCodeDatabaseError, "хранилище недоступно")

	assert.Equal(t, ErrCodeDatabaseError, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "хранилище недоступно")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrap_NotFoundStatus(t *testing.T) {
	err := Wrap(errors.New("sql: no rows in result set"), ErrCodeNotFound, "продавец не найден")

	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}
