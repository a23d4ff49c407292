package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/trustboard-backend/internal/models"
	"github.com/ignatzorin/trustboard-backend/internal/repository/common"
)

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// InsertBatch вставляет пачку заказов внутри транзакции замены снимка.
func (r *OrderRepository) InsertBatch(ctx context.Context, tx *sqlx.Tx, orders []models.Order) error {
	inserter := common.NewBatchInserter(tx, `
		INSERT INTO orders (id, user_id, seller_id, amount, status, category, region, order_date, fulfillment_date, is_disputed, is_returned, fraud_flag, created_at)
	`, 13, 100)

	for _, o := range orders {
		if err := inserter.Add(ctx,
			o.ID, o.UserID, o.SellerID, o.Amount, o.Status, o.Category, o.Region,
			o.OrderDate, o.FulfillmentDate, o.IsDisputed, o.IsReturned, o.FraudFlag, o.CreatedAt,
		); err != nil {
			return err
		}
	}
	return inserter.Flush(ctx)
}

// DeleteAll удаляет все заказы в рамках транзакции.
func (r *OrderRepository) DeleteAll(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM orders`)
	return err
}

// ListAll возвращает все заказы.
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.SelectContext(ctx, &orders, `SELECT * FROM orders ORDER BY created_at`)
	return orders, err
}

// Count возвращает количество заказов.
func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders`)
	return count, err
}

// CountSince возвращает количество заказов, оформленных после указанной даты.
func (r *OrderRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders WHERE order_date >= $1`, since)
	return count, err
}
