package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres/repository"
)

// SessionResetter drops in-memory per-user state.
type SessionResetter interface {
	ResetSession(userID int64)
}

type ResetService struct {
	tr       Transactor
	sessions []SessionResetter
}

func NewResetService(
	tr Transactor,
	sessions ...SessionResetter,
) *ResetService {
	return &ResetService{
		tr:       tr,
		sessions: sessions,
	}
}

// ResetUser clears all stored data of the user and restores default settings.
func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		resetRepo := repository.NewResetRepository(tx)
		return resetRepo.ResetUser(ctx, userID)
	})
	if err != nil {
		return fmt.Errorf("reset user: %w", err)
	}

	for _, sess := range s.sessions {
		sess.ResetSession(userID)
	}
	return nil
}
