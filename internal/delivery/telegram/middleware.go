package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, errorText(err))
			return nil
		}
		return nil
	}
}

// errorText picks the user-facing text for an error kind.
func errorText(err error) string {
	switch {
	case errors.Is(err, entities.ErrProviderFailure):
		return msgProviderUnavailable
	case errors.Is(err, entities.ErrPlaybackFailure):
		return msgPlaybackFailed
	case errors.Is(err, entities.ErrCapabilityUnavailable):
		return msgLocationUnavailable
	default:
		return msgInternalError
	}
}
