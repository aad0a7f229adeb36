package telegram

import (
	"context"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Services groups the use cases the bot talks to.
type Services struct {
	User      UserService
	Settings  SettingsService
	Prayer    PrayerService
	Qibla     QiblaService
	Quran     QuranService
	Hadith    HadithService
	Dua       DuaService
	Tasbih    TasbihService
	Dashboard DashboardService
	Reset     ResetService
}

type Handler struct {
	bot     *tgbotapi.BotAPI
	logger  *zap.Logger
	now     func() time.Time
	prompts PromptStorage
	player  Player

	userService      UserService
	settingsService  SettingsService
	prayerService    PrayerService
	qiblaService     QiblaService
	quranService     QuranService
	hadithService    HadithService
	duaService       DuaService
	tasbihService    TasbihService
	dashboardService DashboardService
	resetService     ResetService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	services Services,
	player Player,
	prompts PromptStorage,
) *Handler {
	return &Handler{
		bot:     bot,
		logger:  logger,
		now:     time.Now,
		prompts: prompts,
		player:  player,

		userService:      services.User,
		settingsService:  services.Settings,
		prayerService:    services.Prayer,
		qiblaService:     services.Qibla,
		quranService:     services.Quran,
		hadithService:    services.Hadith,
		duaService:       services.Dua,
		tasbihService:    services.Tasbih,
		dashboardService: services.Dashboard,
		resetService:     services.Reset,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if _, err := h.userService.EnsureUser(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if loc := update.Message.Location; loc != nil {
		_ = h.withErrorHandling(h.locationHandler(from.ID, loc.Latitude, loc.Longitude))(ctx, chatID)
		return
	}

	if update.Message.IsCommand() {
		// A command cancels any pending free-text question.
		h.prompts.Take(chatID)

		args := update.Message.CommandArguments()

		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.startHandler(from.ID))(ctx, chatID)

		case "prayer":
			_ = h.withErrorHandling(h.prayerHandler(from.ID, 0))(ctx, chatID)

		case "qibla":
			_ = h.withErrorHandling(h.qiblaHandler(from.ID))(ctx, chatID)

		case "quran":
			_ = h.withErrorHandling(h.quranHandler(from.ID, args))(ctx, chatID)

		case "hadith":
			_ = h.withErrorHandling(h.hadithHandler(args))(ctx, chatID)

		case "dua":
			_ = h.withErrorHandling(h.duaHandler(args))(ctx, chatID)

		case "tasbih":
			_ = h.withErrorHandling(h.tasbihHandler(from.ID, 0))(ctx, chatID)

		case "settings":
			_ = h.withErrorHandling(h.settingsHandler(from.ID, 0))(ctx, chatID)

		case "reset":
			h.handleResetCommand(chatID)

		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))

		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	if prompt, ok := h.prompts.Take(chatID); ok {
		_ = h.withErrorHandling(h.promptHandler(from.ID, prompt, update.Message.Text))(ctx, chatID)
		return
	}

	h.send(newHTMLMessage(chatID, msgUnknownCommand))
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// sessionID names the playback session of a chat.
func sessionID(chatID int64) string {
	return sessionPrefix + strconv.FormatInt(chatID, 10)
}

const sessionPrefix = "tg:"
