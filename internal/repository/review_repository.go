package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/trustboard-backend/internal/models"
	"github.com/ignatzorin/trustboard-backend/internal/repository/common"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// InsertBatch вставляет пачку отзывов внутри транзакции замены снимка.
func (r *ReviewRepository) InsertBatch(ctx context.Context, tx *sqlx.Tx, reviews []models.Review) error {
	inserter := common.NewBatchInserter(tx, `
		INSERT INTO reviews (id, order_id, user_id, seller_id, rating, review_text, sentiment_score, sentiment_label, review_date, created_at)
	`, 10, 100)

	for _, rv := range reviews {
		if err := inserter.Add(ctx,
			rv.ID, rv.OrderID, rv.UserID, rv.SellerID, rv.Rating, rv.ReviewText,
			rv.SentimentScore, rv.SentimentLabel, rv.ReviewDate, rv.CreatedAt,
		); err != nil {
			return err
		}
	}
	return inserter.Flush(ctx)
}

// DeleteAll удаляет все отзывы в рамках транзакции.
func (r *ReviewRepository) DeleteAll(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM reviews`)
	return err
}

// ListAll возвращает все отзывы.
func (r *ReviewRepository) ListAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.SelectContext(ctx, &reviews, `SELECT * FROM reviews ORDER BY created_at`)
	return reviews, err
}

// Count возвращает количество отзывов.
func (r *ReviewRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM reviews`)
	return count, err
}
