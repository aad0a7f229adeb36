package telegram

import (
	"errors"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

var _ service.AlertNotifier = (*Handler)(nil)

// SendPrayerAlert notifies a chat that a prayer time has begun.
func (h *Handler) SendPrayerAlert(chatID int64, alert entities.PrayerAlert) error {
	msg := newHTMLMessage(chatID, renderPrayerAlert(alert))
	msg.ReplyMarkup = *buildPrayerKeyboard()

	if _, err := h.bot.Send(msg); err != nil {
		if isBlocked(err) {
			return fmt.Errorf("send prayer alert: %w: %v", service.ErrRecipientBlocked, err)
		}
		return fmt.Errorf("send prayer alert: %w", err)
	}
	return nil
}

// isBlocked reports a 403 from the Bot API: the user blocked the bot or the
// chat is gone.
func isBlocked(err error) bool {
	var apiErr *tgbotapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden
}
