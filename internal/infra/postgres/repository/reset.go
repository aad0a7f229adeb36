package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres"
)

type ResetRepository struct {
	db postgres.DBTX
}

func NewResetRepository(db postgres.DBTX) *ResetRepository {
	return &ResetRepository{db: db}
}

// ResetUser removes everything stored for the user and restores default settings.
// Run it inside a transaction.
func (s *ResetRepository) ResetUser(ctx context.Context, userID int64) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM prayer_alerts_sent WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete prayer_alerts_sent: %w", err)
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM tasbih_totals WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete tasbih_totals: %w", err)
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM last_read WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete last_read: %w", err)
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM user_settings WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete user_settings: %w", err)
	}

	query := `
		INSERT INTO user_settings (user_id, language_code, calculation_method, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	if _, err := s.db.Exec(ctx, query, userID, entities.LanguageBengali, entities.DefaultCalculationMethod); err != nil {
		return fmt.Errorf("recreate user_settings: %w", err)
	}

	return nil
}
