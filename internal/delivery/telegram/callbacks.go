package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/player"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	toast := newCallbackToast(h.bot, cb.ID)
	defer func() {
		// Remove the user's "clock".
		if err := toast.flush(); err != nil {
			h.logger.Debug("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}

	var (
		chatID    = cb.Message.Chat.ID
		messageID = cb.Message.MessageID
		userID    = cb.From.ID
		data      = decodeCallback(cb.Data)
		fn        HandlerFunc
	)

	switch data.Action {
	case actionHome:
		fn = h.homeHandler(userID, messageID)
	case actionPrayer:
		fn = h.prayerHandler(userID, messageID)
	case actionQibla:
		fn = h.qiblaHandler(userID)
	case actionQuran:
		fn = h.quranCallback(userID, messageID, data)
	case actionHadith:
		fn = h.hadithCallback(messageID, data)
	case actionDua:
		fn = h.duaCallback(messageID, data)
	case actionTasbih:
		fn = h.tasbihCallback(userID, messageID, data, toast)
	case actionSettings:
		fn = h.settingsCallback(userID, messageID, data, toast)
	case actionReset:
		fn = h.resetCallback(userID, messageID, data)
	case actionPlayer:
		fn = h.playerCallback(data, toast)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) quranCallback(userID int64, messageID int, data callbackData) HandlerFunc {
	switch data.sub() {
	case quranList:
		page, _ := data.intParam(1)
		return h.surahListHandler(page, messageID)

	case quranPage:
		chapter, ok := data.intParam(1)
		if !ok {
			return invalidCallback(data)
		}
		page, _ := data.intParam(2)
		return h.surahPageHandler(userID, chapter, page, messageID)

	case quranPlay:
		chapter, ok := data.intParam(1)
		if !ok {
			return invalidCallback(data)
		}
		return h.playChapterHandler(chapter)

	case quranVerse:
		chapter, ok := data.intParam(1)
		verse, ok2 := data.intParam(2)
		if !ok || !ok2 {
			return invalidCallback(data)
		}
		return h.playVerseHandler(chapter, verse)
	}

	return invalidCallback(data)
}

func (h *Handler) hadithCallback(messageID int, data callbackData) HandlerFunc {
	switch data.sub() {
	case hadithBooks:
		return func(_ context.Context, chatID int64) error {
			h.reply(chatID, messageID, "📜 <b>হাদিস গ্রন্থ নির্বাচন করুন</b>", buildHadithBooksKeyboard(h.hadithService.Books()))
			return nil
		}

	case hadithBook:
		if len(data.Params) < 2 {
			return invalidCallback(data)
		}
		offset, _ := data.intParam(2)
		return h.hadithBookHandler(data.Params[1], offset, messageID)
	}

	return invalidCallback(data)
}

func (h *Handler) duaCallback(messageID int, data callbackData) HandlerFunc {
	switch data.sub() {
	case duaRandom:
		return h.duaShowHandler(h.duaService.Random(), messageID)

	case duaShow:
		if len(data.Params) < 2 {
			return invalidCallback(data)
		}
		d, ok := h.duaService.Get(data.Params[1])
		if !ok {
			return func(_ context.Context, chatID int64) error {
				h.send(newHTMLMessage(chatID, msgDuaNotFound))
				return nil
			}
		}
		return h.duaShowHandler(d, messageID)
	}

	return invalidCallback(data)
}

func (h *Handler) tasbihCallback(userID int64, messageID int, data callbackData, toast *callbackToast) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch data.sub() {
		case tasbihIncrement:
			state, err := h.tasbihService.Increment(ctx, userID, toast)
			if err != nil {
				return fmt.Errorf("tasbih increment: %w", err)
			}
			h.reply(chatID, messageID, renderTasbih(state), buildTasbihKeyboard())
			return nil

		case tasbihReset:
			h.tasbihService.ResetSession(userID)
			toast.text = msgTasbihReset
			return h.tasbihHandler(userID, messageID)(ctx, chatID)
		}

		return invalidCallback(data)(ctx, chatID)
	}
}

func (h *Handler) resetCallback(userID int64, messageID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch data.sub() {
		case resetConfirm:
			if err := h.resetService.ResetUser(ctx, userID); err != nil {
				return fmt.Errorf("reset user: %w", err)
			}
			h.player.Remove(ctx, sessionID(chatID))
			h.prompts.Take(chatID)
			h.reply(chatID, messageID, msgResetDone, nil)
			return nil

		case resetCancel:
			h.reply(chatID, messageID, msgResetCancelled, nil)
			return nil
		}

		return invalidCallback(data)(ctx, chatID)
	}
}

// playerCallback forwards a control press to the chat's sequencer. Presses on a
// keyboard whose token is no longer the active source are ignored.
func (h *Handler) playerCallback(data callbackData, toast *callbackToast) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		op, token, ok := parsePlayerCallback(data)
		if !ok {
			return invalidCallback(data)(ctx, chatID)
		}

		session := sessionID(chatID)
		state, _ := h.player.State(session)
		if state.Source == nil || state.Source.Token != token {
			toast.text = msgPlayerStale
			return nil
		}

		var msg player.Msg
		switch op {
		case playerToggle:
			msg = player.Toggle{}
		case playerNext:
			msg = player.Advance{}
		case playerPrev:
			msg = player.Retreat{}
		case playerClose:
			msg = player.Close{}
		case playerEnded:
			msg = player.MediaEnded{Token: token}
		default:
			return invalidCallback(data)(ctx, chatID)
		}

		state, err := h.player.Dispatch(ctx, session, msg)
		if errors.Is(err, player.ErrStaleEvent) || errors.Is(err, player.ErrUnknownSession) {
			toast.text = msgPlayerStale
			return nil
		}
		if err != nil {
			return fmt.Errorf("player %s: %w", op, err)
		}

		if state.Status == player.StatusStopped {
			toast.text = msgPlayerStopped
		}
		return nil
	}
}

func invalidCallback(data callbackData) HandlerFunc {
	return func(context.Context, int64) error {
		return fmt.Errorf("invalid callback data %q", data.Raw)
	}
}

// callbackToast answers a callback query at most once. It also serves as the
// haptic collaborator: a pulse is a short "+1" toast.
type callbackToast struct {
	bot  *tgbotapi.BotAPI
	id   string
	text string
	sent bool
}

func newCallbackToast(bot *tgbotapi.BotAPI, id string) *callbackToast {
	return &callbackToast{bot: bot, id: id}
}

// Pulse implements service.Haptic.
func (t *callbackToast) Pulse(context.Context, int64) error {
	t.text = "+১"
	return t.flush()
}

func (t *callbackToast) flush() error {
	if t.sent {
		return nil
	}
	t.sent = true
	if _, err := t.bot.Request(tgbotapi.NewCallback(t.id, t.text)); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}
