package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres"
)

// AlertRepository provides access to prayer alert subscriptions.
type AlertRepository struct {
	db postgres.DBTX
}

// NewAlertRepository creates a new AlertRepository with the provided database pool.
func NewAlertRepository(db postgres.DBTX) *AlertRepository {
	return &AlertRepository{db: db}
}

// GetSubscribersBatch retrieves active users with alerts enabled and a known location (paginated).
func (r *AlertRepository) GetSubscribersBatch(ctx context.Context, limit, offset int) ([]*entities.AlertSubscriber, error) {
	query := `
		SELECT
			us.user_id,
			u.chat_id,
			us.language_code,
			us.calculation_method,
			us.latitude,
			us.longitude
		FROM user_settings us
		INNER JOIN users u ON us.user_id = u.id
		WHERE us.prayer_alerts = TRUE
			AND u.is_active = TRUE
			AND us.latitude IS NOT NULL
			AND us.longitude IS NOT NULL
		ORDER BY us.user_id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get alert subscribers batch: %w", err)
	}
	defer rows.Close()

	var subs []*entities.AlertSubscriber
	for rows.Next() {
		var s entities.AlertSubscriber
		var lang string

		if err := rows.Scan(
			&s.UserID,
			&s.ChatID,
			&lang,
			&s.CalculationMethod,
			&s.Location.Latitude,
			&s.Location.Longitude,
		); err != nil {
			return nil, fmt.Errorf("scan alert subscriber: %w", err)
		}

		s.Language = entities.Language(lang)
		subs = append(subs, &s)
	}

	return subs, rows.Err()
}

// MarkSent records that the alert for label on day went out. It reports false when
// the alert was already recorded, so a restart inside the same minute cannot send twice.
func (r *AlertRepository) MarkSent(ctx context.Context, userID int64, day string, label entities.PrayerLabel) (bool, error) {
	query := `
		INSERT INTO prayer_alerts_sent (user_id, day, label, sent_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, day, label) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query, userID, day, string(label))
	if err != nil {
		return false, fmt.Errorf("mark alert sent: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
