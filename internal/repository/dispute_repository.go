package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/trustboard-backend/internal/models"
	"github.com/ignatzorin/trustboard-backend/internal/repository/common"
)

type DisputeRepository struct {
	db *sqlx.DB
}

func NewDisputeRepository(db *sqlx.DB) *DisputeRepository {
	return &DisputeRepository{db: db}
}

// InsertBatch вставляет пачку споров внутри транзакции замены снимка.
func (r *DisputeRepository) InsertBatch(ctx context.Context, tx *sqlx.Tx, disputes []models.Dispute) error {
	inserter := common.NewBatchInserter(tx, `
		INSERT INTO disputes (id, order_id, user_id, seller_id, dispute_type, amount, status, resolution, dispute_date, resolution_date, created_at)
	`, 11, 100)

	for _, d := range disputes {
		if err := inserter.Add(ctx,
			d.ID, d.OrderID, d.UserID, d.SellerID, d.DisputeType, d.Amount,
			d.Status, d.Resolution, d.DisputeDate, d.ResolutionDate, d.CreatedAt,
		); err != nil {
			return err
		}
	}
	return inserter.Flush(ctx)
}

// DeleteAll удаляет все споры в рамках транзакции.
func (r *DisputeRepository) DeleteAll(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM disputes`)
	return err
}

// ListAll возвращает все споры.
func (r *DisputeRepository) ListAll(ctx context.Context) ([]models.Dispute, error) {
	var disputes []models.Dispute
	err := r.db.SelectContext(ctx, &disputes, `SELECT * FROM disputes ORDER BY created_at`)
	return disputes, err
}

// Count возвращает количество споров.
func (r *DisputeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM disputes`)
	return count, err
}

// CountSince возвращает количество споров, открытых после указанной даты.
func (r *DisputeRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM disputes WHERE dispute_date >= $1`, since)
	return count, err
}

// MonthlyTrends возвращает динамику споров по месяцам и типам:
// количество и общая сумма за каждый месяц.
func (r *DisputeRepository) MonthlyTrends(ctx context.Context) ([]models.DisputeTrend, error) {
	var trends []models.DisputeTrend
	err := r.db.SelectContext(ctx, &trends, `
		SELECT EXTRACT(YEAR FROM dispute_date)::int  AS year,
		       EXTRACT(MONTH FROM dispute_date)::int AS month,
		       dispute_type,
		       COUNT(*)                              AS count,
		       COALESCE(SUM(amount), 0)              AS total_amount
		FROM disputes
		GROUP BY year, month, dispute_type
		ORDER BY year, month
	`)
	return trends, err
}
