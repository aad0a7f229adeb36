package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres"
)

// TasbihRepository persists the cumulative tasbih total per user.
type TasbihRepository struct {
	db postgres.DBTX
}

func NewTasbihRepository(db postgres.DBTX) *TasbihRepository {
	return &TasbihRepository{db: db}
}

// IncrementTotal adds delta to the total and returns the new value.
func (r *TasbihRepository) IncrementTotal(ctx context.Context, userID int64, delta int64) (int64, error) {
	query := `
		INSERT INTO tasbih_totals (user_id, total, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			total = tasbih_totals.total + EXCLUDED.total,
			updated_at = EXCLUDED.updated_at
		RETURNING total
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, userID, delta).Scan(&total); err != nil {
		return 0, fmt.Errorf("increment tasbih total: %w", err)
	}
	return total, nil
}

// GetTotal returns 0 for users who never counted.
func (r *TasbihRepository) GetTotal(ctx context.Context, userID int64) (int64, error) {
	query := "SELECT total FROM tasbih_totals WHERE user_id = $1"

	var total int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get tasbih total: %w", err)
	}
	return total, nil
}
