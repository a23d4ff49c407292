package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/trustboard-backend/internal/models"
	"github.com/ignatzorin/trustboard-backend/internal/repository/common"
)

var ErrSellerNotFound = errors.New("seller not found")

type SellerRepository struct {
	db *sqlx.DB
}

func NewSellerRepository(db *sqlx.DB) *SellerRepository {
	return &SellerRepository{db: db}
}

// InsertBatch вставляет пачку продавцов внутри транзакции замены снимка.
func (r *SellerRepository) InsertBatch(ctx context.Context, tx *sqlx.Tx, sellers []models.Seller) error {
	inserter := common.NewBatchInserter(tx, `
		INSERT INTO sellers (id, name, business_type, region, category, join_date, trust_index, fulfillment_rate, return_rate, complaint_ratio, total_orders, created_at)
	`, 12, 100)

	for _, s := range sellers {
		if err := inserter.Add(ctx,
			s.ID, s.Name, s.BusinessType, s.Region, s.Category, s.JoinDate,
			s.TrustIndex, s.FulfillmentRate, s.ReturnRate, s.ComplaintRatio, s.TotalOrders, s.CreatedAt,
		); err != nil {
			return err
		}
	}
	return inserter.Flush(ctx)
}

// DeleteAll удаляет всех продавцов в рамках транзакции.
func (r *SellerRepository) DeleteAll(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM sellers`)
	return err
}

// GetByID возвращает продавца по ID.
func (r *SellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	return common.GetByID[models.Seller](ctx, r.db, "sellers", id, ErrSellerNotFound)
}

// ListAll возвращает всех продавцов.
func (r *SellerRepository) ListAll(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	err := r.db.SelectContext(ctx, &sellers, `SELECT * FROM sellers ORDER BY created_at`)
	return sellers, err
}

// Count возвращает количество продавцов.
func (r *SellerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sellers`)
	return count, err
}

// TopByTrustIndex возвращает продавцов, отсортированных по trust_index.
func (r *SellerRepository) TopByTrustIndex(ctx context.Context, limit int) ([]models.Seller, error) {
	var sellers []models.Seller
	err := r.db.SelectContext(ctx, &sellers, `
		SELECT * FROM sellers ORDER BY trust_index DESC LIMIT $1
	`, limit)
	return sellers, err
}

// CategoryStats возвращает агрегаты по категориям продавцов.
func (r *SellerRepository) CategoryStats(ctx context.Context) ([]models.CategoryStats, error) {
	var stats []models.CategoryStats
	err := r.db.SelectContext(ctx, &stats, `
		SELECT category,
		       COALESCE(AVG(complaint_ratio), 0)   AS avg_dispute_rate,
		       COALESCE(AVG(fulfillment_rate), 0)  AS avg_fulfillment_rate,
		       COALESCE(AVG(trust_index), 0)       AS avg_trust_index,
		       COUNT(*)                            AS total_sellers
		FROM sellers
		GROUP BY category
		ORDER BY avg_trust_index DESC
	`)
	return stats, err
}
