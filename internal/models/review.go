package models

import (
	"time"

	"github.com/google/uuid"
)

// Review описывает отзыв на заказ. UserID и SellerID денормализованы
// из заказа. SentimentScore/SentimentLabel вычисляются лексическим
// анализатором тональности по тексту отзыва.
type Review struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrderID        uuid.UUID `db:"order_id" json:"order_id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	SellerID       uuid.UUID `db:"seller_id" json:"seller_id"`
	Rating         int       `db:"rating" json:"rating"`
	ReviewText     string    `db:"review_text" json:"review_text"`
	SentimentScore float64   `db:"sentiment_score" json:"sentiment_score"`
	SentimentLabel string    `db:"sentiment_label" json:"sentiment_label"`
	ReviewDate     time.Time `db:"review_date" json:"review_date"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
