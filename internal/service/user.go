package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser registers the user on first contact and reactivates a user who
// had blocked the bot. The boolean reports whether the user is new.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) (bool, error) {
	user := entities.NewUser(userID, chatID)

	created, err := s.repository.Save(ctx, user)
	if err != nil {
		return false, fmt.Errorf("save user: %w", err)
	}
	return created, nil
}
