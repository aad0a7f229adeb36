package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/player"
	"github.com/aliskhannn/nurul-islam-bot/internal/storage"
)

// Media plays sources by sending them as audio messages. Only the latest audio
// message of a chat carries live controls; the previous one is deleted when a new
// source is loaded. Telegram reports no playback events, so the user's "ended"
// button stands in for them.
type Media struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	messages *storage.MessageStorage
	logger   *zap.Logger
}

// NewMediaFactory builds a player.MediaFactory for chat sessions named by sessionID.
func NewMediaFactory(bot *tgbotapi.BotAPI, messages *storage.MessageStorage, logger *zap.Logger) player.MediaFactory {
	return func(id string) player.Media {
		chatID, err := strconv.ParseInt(strings.TrimPrefix(id, sessionPrefix), 10, 64)
		if err != nil {
			logger.Error("session is not a telegram chat", zap.String("session_id", id))
			return player.PassiveMedia{}
		}
		return &Media{
			bot:      bot,
			chatID:   chatID,
			messages: messages,
			logger:   logger,
		}
	}
}

func (m *Media) Load(_ context.Context, src player.Source) error {
	audio := tgbotapi.NewAudio(m.chatID, tgbotapi.FileURL(src.Locator))
	audio.Caption = renderPlayerCaption(src, player.StatusPlaying)
	audio.ReplyMarkup = buildPlayerKeyboard(src.Token, player.StatusPlaying)

	sent, err := m.bot.Send(audio)
	if err != nil {
		return fmt.Errorf("send audio: %w", err)
	}

	if prev, ok := m.messages.UpsertAndGetPrev(m.chatID, sent.MessageID); ok {
		m.delete(prev.MessageID)
	}
	return nil
}

func (m *Media) Pause(_ context.Context, src player.Source) error {
	return m.setStatus(src, player.StatusPaused)
}

func (m *Media) Resume(_ context.Context, src player.Source) error {
	return m.setStatus(src, player.StatusPlaying)
}

func (m *Media) Detach(_ context.Context) {
	cur, ok := m.messages.Get(m.chatID)
	if !ok {
		return
	}
	m.messages.Delete(m.chatID)
	m.delete(cur.MessageID)
}

// setStatus redraws the caption and controls of the current audio message.
func (m *Media) setStatus(src player.Source, status player.Status) error {
	cur, ok := m.messages.Get(m.chatID)
	if !ok {
		return fmt.Errorf("no audio message in chat %d", m.chatID)
	}

	edit := tgbotapi.NewEditMessageCaption(m.chatID, cur.MessageID, renderPlayerCaption(src, status))
	kb := buildPlayerKeyboard(src.Token, status)
	edit.ReplyMarkup = &kb

	if _, err := m.bot.Request(edit); err != nil {
		return fmt.Errorf("edit audio message: %w", err)
	}
	return nil
}

func (m *Media) delete(messageID int) {
	if _, err := m.bot.Request(tgbotapi.NewDeleteMessage(m.chatID, messageID)); err != nil {
		m.logger.Debug("failed to delete audio message",
			zap.Int64("chat_id", m.chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}
