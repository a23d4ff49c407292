package validation

import (
	"fmt"
)

// Константы валидации
const (
	MaxUsers    = 100000
	MaxSellers  = 20000
	MaxOrders   = 500000
	MaxReviews  = 300000
	MaxDisputes = 50000
)

// ValidateCount проверяет, что объём генерации положителен и не
// превышает потолок: отрицательные и нулевые объёмы — ошибка
// вызывающей стороны, чрезмерные — защита от случайного OOM.
func ValidateCount(fieldName string, value, max int) error {
	if value <= 0 {
		return fmt.Errorf("%s должен быть положительным числом", fieldName)
	}
	if value > max {
		return fmt.Errorf("%s должен быть не более %d", fieldName, max)
	}
	return nil
}

// ValidateRange проверяет, что параметр политики лежит в [min, max].
func ValidateRange(fieldName string, value, min, max float64) error {
	if value < min || value > max {
		return fmt.Errorf("%s должен быть в диапазоне [%g, %g]", fieldName, min, max)
	}
	return nil
}
