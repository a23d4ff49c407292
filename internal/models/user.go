package models

import (
	"time"

	"github.com/google/uuid"
)

// User описывает покупателя маркетплейса.
// Записи создаются только генератором и после этого не изменяются.
type User struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Email             string    `db:"email" json:"email"`
	Region            string    `db:"region" json:"region"`
	JoinDate          time.Time `db:"join_date" json:"join_date"`
	TotalOrders       int       `db:"total_orders" json:"total_orders"`
	SatisfactionScore float64   `db:"satisfaction_score" json:"satisfaction_score"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// RegionStats содержит агрегаты по пользователям одного региона.
type RegionStats struct {
	Region          string  `db:"region" json:"region"`
	AvgSatisfaction float64 `db:"avg_satisfaction" json:"avg_satisfaction"`
	TotalUsers      int     `db:"total_users" json:"total_users"`
	AvgOrders       float64 `db:"avg_orders" json:"avg_orders"`
}
