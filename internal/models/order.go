package models

import (
	"time"

	"github.com/google/uuid"
)

// Order описывает заказ, связывающий пользователя и продавца.
// Category и Region денормализованы из продавца и пользователя.
// Флаги IsDisputed/IsReturned/FraudFlag независимы друг от друга.
type Order struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	UserID          uuid.UUID  `db:"user_id" json:"user_id"`
	SellerID        uuid.UUID  `db:"seller_id" json:"seller_id"`
	Amount          float64    `db:"amount" json:"amount"`
	Status          string     `db:"status" json:"status"`
	Category        string     `db:"category" json:"category"`
	Region          string     `db:"region" json:"region"`
	OrderDate       time.Time  `db:"order_date" json:"order_date"`
	FulfillmentDate *time.Time `db:"fulfillment_date" json:"fulfillment_date,omitempty"`
	IsDisputed      bool       `db:"is_disputed" json:"is_disputed"`
	IsReturned      bool       `db:"is_returned" json:"is_returned"`
	FraudFlag       bool       `db:"fraud_flag" json:"fraud_flag"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}
