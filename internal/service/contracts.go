package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/hadithapi"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
}

// UserDeactivator stops alerts for users who can no longer be reached.
type UserDeactivator interface {
	Deactivate(ctx context.Context, userID int64) error
}

type SettingsRepository interface {
	Create(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	CompleteOnboarding(ctx context.Context, userID int64, name string) error
	UpdateName(ctx context.Context, userID int64, name string) error
	UpdateLanguage(ctx context.Context, userID int64, lang entities.Language) error
	UpdateCalculationMethod(ctx context.Context, userID int64, method int) error
	UpdateLocation(ctx context.Context, userID int64, coord entities.GeoCoordinate, city string) error
	ToggleDarkMode(ctx context.Context, userID int64) (bool, error)
	TogglePrayerAlerts(ctx context.Context, userID int64) (bool, error)
}

type ReadingRepository interface {
	SaveLastRead(ctx context.Context, userID int64, last entities.LastRead) error
	GetLastRead(ctx context.Context, userID int64) (*entities.LastRead, error)
}

type TasbihRepository interface {
	IncrementTotal(ctx context.Context, userID int64, delta int64) (int64, error)
	GetTotal(ctx context.Context, userID int64) (int64, error)
}

// AlertRepository manages prayer alert subscriptions.
type AlertRepository interface {
	GetSubscribersBatch(ctx context.Context, limit, offset int) ([]*entities.AlertSubscriber, error)
	MarkSent(ctx context.Context, userID int64, day string, label entities.PrayerLabel) (bool, error)
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// PrayerProvider computes prayer schedules and calendar conversions.
type PrayerProvider interface {
	Timings(ctx context.Context, coord entities.GeoCoordinate, method int, date time.Time) (entities.DailySchedule, error)
	HijriDate(ctx context.Context, date time.Time) (string, error)
}

// QuranProvider serves the chapter catalogue and verse texts.
type QuranProvider interface {
	Surahs(ctx context.Context) ([]entities.Surah, error)
	Ayahs(ctx context.Context, chapter int, edition string) ([]entities.Ayah, error)
}

// HadithProvider serves whole hadith editions.
type HadithProvider interface {
	Hadiths(ctx context.Context, edition string) ([]hadithapi.Narration, error)
}

// ScheduleCache keeps prayer schedules and the last good one per location.
type ScheduleCache interface {
	Schedule(ctx context.Context, coord entities.GeoCoordinate, method int, date string) (entities.DailySchedule, bool, error)
	LastSchedule(ctx context.Context, coord entities.GeoCoordinate, method int) (entities.DailySchedule, bool, error)
	StoreSchedule(ctx context.Context, coord entities.GeoCoordinate, method int, s entities.DailySchedule) error
}

type SurahCache interface {
	Surahs(ctx context.Context) ([]entities.Surah, bool, error)
	StoreSurahs(ctx context.Context, surahs []entities.Surah) error
}

// AlertNotifier sends prayer alerts to users. A recipient who blocked the bot
// is reported as ErrRecipientBlocked.
type AlertNotifier interface {
	SendPrayerAlert(chatID int64, alert entities.PrayerAlert) error
}

// Haptic gives physical feedback on a counter tap. Failures are ignored.
type Haptic interface {
	Pulse(ctx context.Context, userID int64) error
}
