package httpapi

import (
	"context"
	"time"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/domain/qibla"
	"github.com/aliskhannn/nurul-islam-bot/internal/player"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

type PrayerService interface {
	Times(ctx context.Context, coord entities.GeoCoordinate, method int, now time.Time) (*service.PrayerTimes, error)
}

type QiblaService interface {
	DirectionFrom(coord entities.GeoCoordinate) (qibla.Direction, error)
	Compass(dir qibla.Direction, heading *float64) (service.CompassReading, error)
}

type QuranService interface {
	Search(ctx context.Context, query string) ([]entities.Surah, error)
	Read(ctx context.Context, userID int64, chapter int, lang entities.Language) (*entities.SurahReading, error)
}

type HadithService interface {
	SearchBooks(query string) []entities.HadithBook
	Page(ctx context.Context, slug, query string, offset, limit int) (*service.HadithPage, error)
}

type DuaService interface {
	List() []entities.Dua
	Random() entities.Dua
	Search(query string) []entities.Dua
}

// Player keeps one sequencer per browser session.
type Player interface {
	Open(sessionID string) error
	Dispatch(ctx context.Context, sessionID string, msg player.Msg) (player.State, error)
	State(sessionID string) (player.State, bool)
	Remove(ctx context.Context, sessionID string)
}
