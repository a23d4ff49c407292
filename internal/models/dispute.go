package models

import (
	"time"

	"github.com/google/uuid"
)

// Dispute описывает спор по заказу с флагом is_disputed.
// Amount всегда равен сумме заказа. Resolution и ResolutionDate
// заполнены только у разрешённых споров.
type Dispute struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	OrderID        uuid.UUID  `db:"order_id" json:"order_id"`
	UserID         uuid.UUID  `db:"user_id" json:"user_id"`
	SellerID       uuid.UUID  `db:"seller_id" json:"seller_id"`
	DisputeType    string     `db:"dispute_type" json:"dispute_type"`
	Amount         float64    `db:"amount" json:"amount"`
	Status         string     `db:"status" json:"status"`
	Resolution     *string    `db:"resolution" json:"resolution,omitempty"`
	DisputeDate    time.Time  `db:"dispute_date" json:"dispute_date"`
	ResolutionDate *time.Time `db:"resolution_date" json:"resolution_date,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// DisputeTrend содержит агрегаты споров за один месяц по одному типу.
type DisputeTrend struct {
	Year        int     `db:"year" json:"year"`
	Month       int     `db:"month" json:"month"`
	DisputeType string  `db:"dispute_type" json:"dispute_type"`
	Count       int     `db:"count" json:"count"`
	TotalAmount float64 `db:"total_amount" json:"total_amount"`
}
