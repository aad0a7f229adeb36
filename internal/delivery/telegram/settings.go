package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

func (h *Handler) settingsHandler(userID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		h.reply(chatID, messageID, renderSettings(settings), buildSettingsKeyboard(settings))
		return nil
	}
}

func (h *Handler) settingsCallback(userID int64, messageID int, data callbackData, toast *callbackToast) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch data.sub() {
		case settingsMenu:
			// Redrawn below.

		case settingsLanguage:
			if len(data.Params) < 2 {
				return invalidCallback(data)(ctx, chatID)
			}
			err := h.settingsService.UpdateLanguage(ctx, userID, entities.Language(data.Params[1]))
			if err != nil {
				return fmt.Errorf("update language: %w", err)
			}

		case settingsMethod:
			method, ok := data.intParam(1)
			if !ok {
				settings, err := h.settingsService.GetOrCreate(ctx, userID)
				if err != nil {
					return fmt.Errorf("get settings: %w", err)
				}
				h.reply(chatID, messageID, "🧮 <b>নামাজের সময়ের হিসাব পদ্ধতি নির্বাচন করুন</b>", buildMethodKeyboard(settings.CalculationMethod))
				return nil
			}
			err := h.settingsService.UpdateCalculationMethod(ctx, userID, method)
			if errors.Is(err, service.ErrInvalidMethod) {
				return invalidCallback(data)(ctx, chatID)
			}
			if err != nil {
				return fmt.Errorf("update method: %w", err)
			}

		case settingsName:
			h.prompts.Set(chatID, promptName)
			h.send(newHTMLMessage(chatID, msgAskNewName))
			return nil

		case settingsLocation:
			h.askLocation(chatID)
			return nil

		case settingsAlerts:
			on, err := h.settingsService.TogglePrayerAlerts(ctx, userID)
			if err != nil {
				return fmt.Errorf("toggle alerts: %w", err)
			}
			toast.text = "🔔 " + formatBool(on)

		case settingsDarkMode:
			on, err := h.settingsService.ToggleDarkMode(ctx, userID)
			if err != nil {
				return fmt.Errorf("toggle dark mode: %w", err)
			}
			toast.text = "🌙 " + formatBool(on)

		default:
			return invalidCallback(data)(ctx, chatID)
		}

		return h.settingsHandler(userID, messageID)(ctx, chatID)
	}
}
