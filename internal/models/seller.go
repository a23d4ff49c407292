package models

import (
	"time"

	"github.com/google/uuid"
)

// Seller описывает продавца маркетплейса.
// TrustIndex вычисляется один раз при создании:
// fulfillment_rate*40 + (1-return_rate)*30 + (1-complaint_ratio)*30.
type Seller struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	BusinessType    string    `db:"business_type" json:"business_type"`
	Region          string    `db:"region" json:"region"`
	Category        string    `db:"category" json:"category"`
	JoinDate        time.Time `db:"join_date" json:"join_date"`
	TrustIndex      float64   `db:"trust_index" json:"trust_index"`
	FulfillmentRate float64   `db:"fulfillment_rate" json:"fulfillment_rate"`
	ReturnRate      float64   `db:"return_rate" json:"return_rate"`
	ComplaintRatio  float64   `db:"complaint_ratio" json:"complaint_ratio"`
	TotalOrders     int       `db:"total_orders" json:"total_orders"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// CategoryStats содержит агрегаты по продавцам одной категории.
type CategoryStats struct {
	Category           string  `db:"category" json:"category"`
	AvgDisputeRate     float64 `db:"avg_dispute_rate" json:"avg_dispute_rate"`
	AvgFulfillmentRate float64 `db:"avg_fulfillment_rate" json:"avg_fulfillment_rate"`
	AvgTrustIndex      float64 `db:"avg_trust_index" json:"avg_trust_index"`
	TotalSellers       int     `db:"total_sellers" json:"total_sellers"`
}
