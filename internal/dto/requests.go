package dto

import (
	"github.com/ignatzorin/trustboard-backend/internal/validation"
)

// Значения по умолчанию для генерации снапшота
const (
	DefaultNumUsers    = 1000
	DefaultNumSellers  = 200
	DefaultNumOrders   = 5000
	DefaultNumReviews  = 3000
	DefaultNumDisputes = 250
	DefaultSeed        = int64(42)
)

// GenerateDataRequest — параметры генерации нового снапшота данных.
// Нулевые объёмы заменяются значениями по умолчанию. Seed — указатель:
// явный seed 0 — валидное значение, он отличается от отсутствующего.
type GenerateDataRequest struct {
	NumUsers    int    `json:"num_users"`
	NumSellers  int    `json:"num_sellers"`
	NumOrders   int    `json:"num_orders"`
	NumReviews  int    `json:"num_reviews"`
	NumDisputes int    `json:"num_disputes"`
	Seed        *int64 `json:"seed"`
}

// ApplyDefaults подставляет значения по умолчанию вместо незаданных полей.
func (r *GenerateDataRequest) ApplyDefaults() {
	if r.NumUsers == 0 {
		r.NumUsers = DefaultNumUsers
	}
	if r.NumSellers == 0 {
		r.NumSellers = DefaultNumSellers
	}
	if r.NumOrders == 0 {
		r.NumOrders = DefaultNumOrders
	}
	if r.NumReviews == 0 {
		r.NumReviews = DefaultNumReviews
	}
	if r.NumDisputes == 0 {
		r.NumDisputes = DefaultNumDisputes
	}
	if r.Seed == nil {
		seed := DefaultSeed
		r.Seed = &seed
	}
}

// Validate проверяет объёмы генерации после подстановки значений по умолчанию.
func (r *GenerateDataRequest) Validate() error {
	if err := validation.ValidateCount("num_users", r.NumUsers, validation.MaxUsers); err != nil {
		return err
	}
	if err := validation.ValidateCount("num_sellers", r.NumSellers, validation.MaxSellers); err != nil {
		return err
	}
	if err := validation.ValidateCount("num_orders", r.NumOrders, validation.MaxOrders); err != nil {
		return err
	}
	if err := validation.ValidateCount("num_reviews", r.NumReviews, validation.MaxReviews); err != nil {
		return err
	}
	if err := validation.ValidateCount("num_disputes", r.NumDisputes, validation.MaxDisputes); err != nil {
		return err
	}
	return nil
}

// Значения по умолчанию для симуляции политики
const (
	DefaultMinFulfillmentRate = 0.9
	DefaultMaxComplaintRatio  = 0.1
	DefaultMinTrustIndex      = 70.0
)

// PolicySimulationRequest — пороги симуляции политики (query-параметры).
// Поля — указатели: явный нулевой порог отличается от отсутствующего.
type PolicySimulationRequest struct {
	MinFulfillmentRate *float64 `form:"min_fulfillment_rate"`
	MaxComplaintRatio  *float64 `form:"max_complaint_ratio"`
	MinTrustIndex      *float64 `form:"min_trust_index"`
}

// ApplyDefaults подставляет пороги по умолчанию вместо незаданных полей.
func (r *PolicySimulationRequest) ApplyDefaults() {
	if r.MinFulfillmentRate == nil {
		v := DefaultMinFulfillmentRate
		r.MinFulfillmentRate = &v
	}
	if r.MaxComplaintRatio == nil {
		v := DefaultMaxComplaintRatio
		r.MaxComplaintRatio = &v
	}
	if r.MinTrustIndex == nil {
		v := DefaultMinTrustIndex
		r.MinTrustIndex = &v
	}
}

// Validate проверяет диапазоны порогов. Вызывается после ApplyDefaults.
func (r *PolicySimulationRequest) Validate() error {
	if err := validation.ValidateRange("min_fulfillment_rate", *r.MinFulfillmentRate, 0, 1); err != nil {
		return err
	}
	if err := validation.ValidateRange("max_complaint_ratio", *r.MaxComplaintRatio, 0, 1); err != nil {
		return err
	}
	if err := validation.ValidateRange("min_trust_index", *r.MinTrustIndex, 0, 100); err != nil {
		return err
	}
	return nil
}
