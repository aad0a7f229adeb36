package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/player"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

// startHandler greets new users and asks for their name; onboarded users get the dashboard.
func (h *Handler) startHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		if !settings.Onboarded {
			h.send(newHTMLMessage(chatID, msgWelcome))
			h.send(newHTMLMessage(chatID, msgAskName))
			h.prompts.Set(chatID, promptOnboardingName)
			return nil
		}

		return h.homeHandler(userID, 0)(ctx, chatID)
	}
}

func (h *Handler) homeHandler(userID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		d, err := h.dashboardService.Build(ctx, userID, h.now())
		if err != nil {
			return fmt.Errorf("build dashboard: %w", err)
		}

		h.reply(chatID, messageID, renderDashboard(d), buildHomeKeyboard())
		return nil
	}
}

func (h *Handler) prayerHandler(userID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		times, w, err := h.prayerService.Window(ctx, userID, h.now())
		if err != nil {
			return fmt.Errorf("prayer window: %w", err)
		}

		h.reply(chatID, messageID, renderPrayer(times, w), buildPrayerKeyboard())

		if times.DefaultLocation && messageID == 0 {
			h.askLocation(chatID)
		}
		return nil
	}
}

func (h *Handler) qiblaHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		dir, err := h.qiblaService.Direction(ctx, userID)
		approximate := errors.Is(err, entities.ErrCapabilityUnavailable)
		if err != nil && !approximate {
			return fmt.Errorf("qibla direction: %w", err)
		}

		// There is no compass in a chat; the reading falls back to true north.
		reading, _ := h.qiblaService.Compass(dir, nil)

		msg := newHTMLMessage(chatID, renderQibla(reading, approximate, false))
		if approximate {
			msg.ReplyMarkup = buildLocationKeyboard()
		}
		h.send(msg)
		return nil
	}
}

// locationHandler stores a shared location and answers with the qibla and today's times.
func (h *Handler) locationHandler(userID int64, lat, lng float64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		coord, err := entities.NewGeoCoordinate(lat, lng)
		if err != nil {
			h.send(newHTMLMessage(chatID, msgInvalidLocation))
			return nil
		}

		if err := h.settingsService.UpdateLocation(ctx, userID, coord, ""); err != nil {
			return fmt.Errorf("update location: %w", err)
		}

		dir, err := h.qiblaService.DirectionFrom(coord)
		if err != nil {
			return fmt.Errorf("qibla direction: %w", err)
		}
		reading, _ := h.qiblaService.Compass(dir, nil)

		msg := newHTMLMessage(chatID, renderQibla(reading, false, false))
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		h.send(msg)

		return h.prayerHandler(userID, 0)(ctx, chatID)
	}
}

func (h *Handler) askLocation(chatID int64) {
	msg := newHTMLMessage(chatID, msgAskLocation)
	msg.ReplyMarkup = buildLocationKeyboard()
	h.send(msg)
}

// quranHandler opens the surah list, or the surah matching args.
func (h *Handler) quranHandler(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		query := strings.TrimSpace(args)
		if query == "" {
			return h.surahListHandler(0, 0)(ctx, chatID)
		}

		found, err := h.quranService.Search(ctx, query)
		if err != nil {
			return fmt.Errorf("search surahs: %w", err)
		}

		switch len(found) {
		case 0:
			h.send(newHTMLMessage(chatID, msgSurahNotFound))
			return nil
		case 1:
			return h.surahPageHandler(userID, found[0].Number, 0, 0)(ctx, chatID)
		}

		if len(found) > surahsPerPage {
			found = found[:surahsPerPage]
		}
		h.reply(chatID, 0, "📖 <b>পাওয়া গেছে:</b>", buildSurahSearchKeyboard(found))
		return nil
	}
}

func (h *Handler) surahListHandler(page, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		surahs, err := h.quranService.Surahs(ctx)
		if err != nil {
			return fmt.Errorf("list surahs: %w", err)
		}

		text, shown, page := renderSurahList(surahs, page)
		kb := buildSurahListKeyboard(shown, page, pageCount(len(surahs), surahsPerPage))

		h.reply(chatID, messageID, text, kb)
		return nil
	}
}

func (h *Handler) surahPageHandler(userID int64, chapter, page, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		reading, err := h.read(ctx, userID, chapter)
		if errors.Is(err, service.ErrSurahNotFound) {
			h.send(newHTMLMessage(chatID, msgSurahNotFound))
			return nil
		}
		if err != nil {
			return err
		}

		text, page := renderSurahPage(reading, page)

		firstVerse := 1
		if i := page * versesPerPage; i < len(reading.Verses) {
			firstVerse = reading.Verses[i].NumberInSurah
		}
		kb := buildSurahPageKeyboard(chapter, page, pageCount(len(reading.Verses), versesPerPage), firstVerse)

		h.reply(chatID, messageID, text, kb)
		return nil
	}
}

// read opens a surah in the user's translation language.
func (h *Handler) read(ctx context.Context, userID int64, chapter int) (*entities.SurahReading, error) {
	lang := entities.LanguageBengali
	if settings, err := h.settingsService.GetOrCreate(ctx, userID); err == nil {
		lang = settings.Language
	}

	reading, err := h.quranService.Read(ctx, userID, chapter, lang)
	if err != nil {
		return nil, fmt.Errorf("read surah %d: %w", chapter, err)
	}
	return reading, nil
}

// playChapterHandler starts playback of a whole surah.
func (h *Handler) playChapterHandler(chapter int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session := sessionID(chatID)
		if err := h.player.Open(session); err != nil {
			return fmt.Errorf("open player: %w", err)
		}
		_, err := h.player.Dispatch(ctx, session, player.SelectChapter{Chapter: chapter})
		if err != nil {
			return fmt.Errorf("play surah %d: %w", chapter, err)
		}
		return nil
	}
}

// playVerseHandler starts verse-by-verse playback from a verse.
func (h *Handler) playVerseHandler(chapter, verse int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		pos, err := h.quranService.VersePosition(ctx, chapter, verse)
		if err != nil {
			return fmt.Errorf("locate verse %d:%d: %w", chapter, verse, err)
		}

		session := sessionID(chatID)
		if err := h.player.Open(session); err != nil {
			return fmt.Errorf("open player: %w", err)
		}

		msg := player.SelectVerse{
			Chapter:     pos.Chapter,
			Verse:       pos.Verse,
			Total:       pos.Total,
			GlobalVerse: pos.GlobalVerse,
		}
		if _, err := h.player.Dispatch(ctx, session, msg); err != nil {
			return fmt.Errorf("play verse %d:%d: %w", chapter, verse, err)
		}
		return nil
	}
}

// hadithHandler lists the collections, filtered by args when given.
func (h *Handler) hadithHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		books := h.hadithService.SearchBooks(strings.TrimSpace(args))
		if len(books) == 0 {
			h.send(newHTMLMessage(chatID, msgHadithNotFound))
			return nil
		}
		h.reply(chatID, 0, "📜 <b>হাদিস গ্রন্থ নির্বাচন করুন</b>", buildHadithBooksKeyboard(books))
		return nil
	}
}

func (h *Handler) hadithBookHandler(slug string, offset, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		page, err := h.hadithService.Page(ctx, slug, "", offset, hadithsPerPage)
		if errors.Is(err, service.ErrHadithBookNotFound) {
			h.send(newHTMLMessage(chatID, msgHadithNotFound))
			return nil
		}
		if err != nil {
			return fmt.Errorf("hadith page: %w", err)
		}

		h.reply(chatID, messageID, renderHadithPage(page), buildHadithPageKeyboard(slug, page.Offset, page.Total))
		return nil
	}
}

// duaHandler shows a random dua, or the duas matching args.
func (h *Handler) duaHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		query := strings.TrimSpace(args)
		if query == "" {
			return h.duaShowHandler(h.duaService.Random(), 0)(ctx, chatID)
		}

		found := h.duaService.Search(query)
		switch len(found) {
		case 0:
			h.send(newHTMLMessage(chatID, msgDuaNotFound))
			return nil
		case 1:
			return h.duaShowHandler(found[0], 0)(ctx, chatID)
		}

		h.reply(chatID, 0, renderDuaList(found), buildDuaListKeyboard(found))
		return nil
	}
}

func (h *Handler) duaShowHandler(d entities.Dua, messageID int) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		h.reply(chatID, messageID, renderDua(d), buildDuaKeyboard())
		return nil
	}
}

func (h *Handler) tasbihHandler(userID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.tasbihService.State(ctx, userID)
		if err != nil {
			return fmt.Errorf("tasbih state: %w", err)
		}
		h.reply(chatID, messageID, renderTasbih(state), buildTasbihKeyboard())
		return nil
	}
}

func (h *Handler) handleResetCommand(chatID int64) {
	h.reply(chatID, 0, msgResetConfirm, buildResetKeyboard())
}
