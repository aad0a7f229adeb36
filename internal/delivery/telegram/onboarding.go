package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

// Free-text prompts a chat can owe the bot.
const (
	promptOnboardingName = "onboarding_name"
	promptName           = "name"
)

// promptHandler consumes the answer to a pending prompt.
func (h *Handler) promptHandler(userID int64, prompt, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		var err error
		switch prompt {
		case promptOnboardingName:
			err = h.settingsService.CompleteOnboarding(ctx, userID, text)
		case promptName:
			err = h.settingsService.UpdateName(ctx, userID, text)
		default:
			return fmt.Errorf("unknown prompt %q", prompt)
		}

		if errors.Is(err, service.ErrInvalidName) {
			h.prompts.Set(chatID, prompt)
			h.send(newHTMLMessage(chatID, msgInvalidName))
			return nil
		}
		if err != nil {
			return fmt.Errorf("save name: %w", err)
		}

		if prompt == promptName {
			return h.settingsHandler(userID, 0)(ctx, chatID)
		}

		h.askLocation(chatID)
		return h.homeHandler(userID, 0)(ctx, chatID)
	}
}
