package telegram

import (
	"context"
	"time"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/domain/prayer"
	"github.com/aliskhannn/nurul-islam-bot/internal/domain/qibla"
	"github.com/aliskhannn/nurul-islam-bot/internal/player"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) (bool, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	CompleteOnboarding(ctx context.Context, userID int64, name string) error
	UpdateName(ctx context.Context, userID int64, name string) error
	UpdateLanguage(ctx context.Context, userID int64, lang entities.Language) error
	UpdateCalculationMethod(ctx context.Context, userID int64, method int) error
	UpdateLocation(ctx context.Context, userID int64, coord entities.GeoCoordinate, city string) error
	ToggleDarkMode(ctx context.Context, userID int64) (bool, error)
	TogglePrayerAlerts(ctx context.Context, userID int64) (bool, error)
}

type PrayerService interface {
	Window(ctx context.Context, userID int64, now time.Time) (*service.PrayerTimes, prayer.Window, error)
}

type QiblaService interface {
	Direction(ctx context.Context, userID int64) (qibla.Direction, error)
	DirectionFrom(coord entities.GeoCoordinate) (qibla.Direction, error)
	Compass(dir qibla.Direction, heading *float64) (service.CompassReading, error)
}

type QuranService interface {
	Surahs(ctx context.Context) ([]entities.Surah, error)
	Search(ctx context.Context, query string) ([]entities.Surah, error)
	Read(ctx context.Context, userID int64, chapter int, lang entities.Language) (*entities.SurahReading, error)
	VersePosition(ctx context.Context, chapter, verse int) (entities.PlaybackPosition, error)
}

type HadithService interface {
	Books() []entities.HadithBook
	SearchBooks(query string) []entities.HadithBook
	Page(ctx context.Context, slug, query string, offset, limit int) (*service.HadithPage, error)
}

type DuaService interface {
	Random() entities.Dua
	Search(query string) []entities.Dua
	Get(id string) (entities.Dua, bool)
}

type TasbihService interface {
	Increment(ctx context.Context, userID int64, haptic service.Haptic) (entities.TasbihState, error)
	ResetSession(userID int64)
	State(ctx context.Context, userID int64) (entities.TasbihState, error)
}

type DashboardService interface {
	Build(ctx context.Context, userID int64, now time.Time) (*service.Dashboard, error)
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}

// Player routes playback messages to a per-chat sequencer.
type Player interface {
	Open(sessionID string) error
	Dispatch(ctx context.Context, sessionID string, msg player.Msg) (player.State, error)
	State(sessionID string) (player.State, bool)
	Remove(ctx context.Context, sessionID string)
}

// PromptStorage remembers which free-text answer a chat owes the bot.
type PromptStorage interface {
	Set(chatID int64, prompt string)
	Take(chatID int64) (string, bool)
}
