package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

// TasbihSessions keeps the per-user count of the current session.
type TasbihSessions interface {
	Increment(userID int64) int
	Get(userID int64) int
	Delete(userID int64)
}

type TasbihService struct {
	sessions TasbihSessions
	repo     TasbihRepository
	logger   *zap.Logger
}

func NewTasbihService(sessions TasbihSessions, repo TasbihRepository, logger *zap.Logger) *TasbihService {
	return &TasbihService{sessions: sessions, repo: repo, logger: logger}
}

// Increment counts one tap. The session count only moves once the total is stored.
// haptic may be nil; its failure never fails the tap.
func (s *TasbihService) Increment(ctx context.Context, userID int64, haptic Haptic) (entities.TasbihState, error) {
	total, err := s.repo.IncrementTotal(ctx, userID, 1)
	if err != nil {
		return entities.TasbihState{Count: s.sessions.Get(userID)}, fmt.Errorf("increment total: %w", err)
	}
	count := s.sessions.Increment(userID)

	if haptic != nil {
		if err := haptic.Pulse(ctx, userID); err != nil {
			s.logger.Debug("haptic pulse failed", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return entities.TasbihState{Count: count, Total: total}, nil
}

// ResetSession sets the session count to zero; the total is kept.
func (s *TasbihService) ResetSession(userID int64) {
	s.sessions.Delete(userID)
}

func (s *TasbihService) State(ctx context.Context, userID int64) (entities.TasbihState, error) {
	total, err := s.repo.GetTotal(ctx, userID)
	if err != nil {
		return entities.TasbihState{}, fmt.Errorf("get total: %w", err)
	}
	return entities.TasbihState{Count: s.sessions.Get(userID), Total: total}, nil
}
