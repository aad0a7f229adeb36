package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres"
)

var ErrLastReadNotFound = errors.New("last read not found")

// ReadingRepository stores the last chapter each user opened.
type ReadingRepository struct {
	db postgres.DBTX
}

func NewReadingRepository(db postgres.DBTX) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// SaveLastRead overwrites the user's last read chapter.
func (r *ReadingRepository) SaveLastRead(ctx context.Context, userID int64, last entities.LastRead) error {
	query := `
		INSERT INTO last_read (user_id, surah_number, surah_name, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			surah_number = EXCLUDED.surah_number,
			surah_name = EXCLUDED.surah_name,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Exec(ctx, query, userID, last.Number, last.Name); err != nil {
		return fmt.Errorf("save last read: %w", err)
	}
	return nil
}

// GetLastRead returns ErrLastReadNotFound if the user never opened a chapter.
func (r *ReadingRepository) GetLastRead(ctx context.Context, userID int64) (*entities.LastRead, error) {
	query := "SELECT surah_number, surah_name FROM last_read WHERE user_id = $1"

	var last entities.LastRead
	err := r.db.QueryRow(ctx, query, userID).Scan(&last.Number, &last.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLastReadNotFound
		}
		return nil, fmt.Errorf("get last read: %w", err)
	}

	return &last, nil
}
