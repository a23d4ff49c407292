package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/trustboard-backend/internal/models"
	"github.com/ignatzorin/trustboard-backend/internal/repository/common"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// InsertBatch вставляет пачку пользователей внутри транзакции замены снимка.
func (r *UserRepository) InsertBatch(ctx context.Context, tx *sqlx.Tx, users []models.User) error {
	inserter := common.NewBatchInserter(tx, `
		INSERT INTO users (id, name, email, region, join_date, total_orders, satisfaction_score, created_at)
	`, 8, 100)

	for _, u := range users {
		if err := inserter.Add(ctx, u.ID, u.Name, u.Email, u.Region, u.JoinDate, u.TotalOrders, u.SatisfactionScore, u.CreatedAt); err != nil {
			return err
		}
	}
	return inserter.Flush(ctx)
}

// DeleteAll удаляет всех пользователей в рамках транзакции.
func (r *UserRepository) DeleteAll(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM users`)
	return err
}

// ListAll возвращает всех пользователей.
func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY created_at`)
	return users, err
}

// Count возвращает количество пользователей.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	return count, err
}

// RegionalStats возвращает агрегаты по регионам: средняя
// удовлетворённость, количество пользователей, среднее число заказов.
func (r *UserRepository) RegionalStats(ctx context.Context) ([]models.RegionStats, error) {
	var stats []models.RegionStats
	err := r.db.SelectContext(ctx, &stats, `
		SELECT region,
		       COALESCE(AVG(satisfaction_score), 0) AS avg_satisfaction,
		       COUNT(*)                             AS total_users,
		       COALESCE(AVG(total_orders), 0)       AS avg_orders
		FROM users
		GROUP BY region
		ORDER BY avg_satisfaction DESC
	`)
	return stats, err
}
