package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/domain/prayer"
)

// PrayerTimes is a day's schedule for a location and how it was obtained.
type PrayerTimes struct {
	Schedule        entities.DailySchedule
	Coordinate      entities.GeoCoordinate
	City            string
	Method          int
	Stale           bool // provider failed, last known schedule returned
	DefaultLocation bool // user has no location, Dhaka used
}

// PrayerService resolves prayer schedules through the cache, the provider
// and finally the last known good schedule.
type PrayerService struct {
	settings SettingsRepository
	provider PrayerProvider
	cache    ScheduleCache
	logger   *zap.Logger
}

func NewPrayerService(
	settings SettingsRepository,
	provider PrayerProvider,
	cache ScheduleCache,
	logger *zap.Logger,
) *PrayerService {
	return &PrayerService{
		settings: settings,
		provider: provider,
		cache:    cache,
		logger:   logger,
	}
}

// Today returns the schedule for the user's location and method.
func (s *PrayerService) Today(ctx context.Context, userID int64, now time.Time) (*PrayerTimes, error) {
	settings, err := s.settings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	coord, city, ok := settings.LocationOrDefault()
	times, err := s.Times(ctx, coord, settings.CalculationMethod, now)
	if err != nil {
		return nil, err
	}
	times.City = city
	times.DefaultLocation = !ok

	return times, nil
}

// Window returns the user's schedule and where now falls within it.
func (s *PrayerService) Window(ctx context.Context, userID int64, now time.Time) (*PrayerTimes, prayer.Window, error) {
	times, err := s.Today(ctx, userID, now)
	if err != nil {
		return nil, prayer.Window{}, err
	}
	return times, WindowAt(times.Schedule, now), nil
}

// WindowAt evaluates the window at now, read as wall-clock time in the schedule's zone.
func WindowAt(schedule entities.DailySchedule, now time.Time) prayer.Window {
	return prayer.CurrentWindow(schedule, entities.ClockOf(now.In(schedule.Location())))
}

// Times returns the schedule for an arbitrary coordinate.
func (s *PrayerService) Times(ctx context.Context, coord entities.GeoCoordinate, method int, now time.Time) (*PrayerTimes, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}
	if _, ok := entities.LookupCalculationMethod(method); !ok {
		method = entities.DefaultCalculationMethod
	}

	result := &PrayerTimes{Coordinate: coord, City: coord.String(), Method: method}
	local := s.localTime(ctx, coord, method, now)
	date := local.Format(time.DateOnly)

	cached, found, err := s.cache.Schedule(ctx, coord, method, date)
	if err != nil {
		s.logger.Warn("prayer cache read failed", zap.String("date", date), zap.Error(err))
	}
	if found {
		result.Schedule = cached
		return result, nil
	}

	schedule, err := s.provider.Timings(ctx, coord, method, local)
	if err == nil {
		if err := s.cache.StoreSchedule(ctx, coord, method, schedule); err != nil {
			s.logger.Warn("prayer cache write failed", zap.String("date", date), zap.Error(err))
		}
		result.Schedule = schedule
		return result, nil
	}

	s.logger.Warn("prayer provider failed",
		zap.Stringer("coordinate", coord),
		zap.Int("method", method),
		zap.Error(err),
	)

	last, found, cacheErr := s.cache.LastSchedule(ctx, coord, method)
	if cacheErr != nil {
		s.logger.Warn("prayer cache read failed", zap.Error(cacheErr))
	}
	if !found {
		return nil, fmt.Errorf("%w: %v", entities.ErrProviderFailure, err)
	}

	result.Schedule = last
	result.Stale = true
	return result, nil
}

// HijriDate returns today's Hijri date for display.
func (s *PrayerService) HijriDate(ctx context.Context, now time.Time) (string, error) {
	date, err := s.provider.HijriDate(ctx, now)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrProviderFailure, err)
	}
	return date, nil
}

// localTime puts now in the observer's zone. The zone comes from the last schedule
// seen for the location; without one it is estimated from the longitude.
func (s *PrayerService) localTime(ctx context.Context, coord entities.GeoCoordinate, method int, now time.Time) time.Time {
	last, found, err := s.cache.LastSchedule(ctx, coord, method)
	if err == nil && found && last.Timezone != "" {
		return now.In(last.Location())
	}
	return now.In(solarZone(coord))
}

func solarZone(coord entities.GeoCoordinate) *time.Location {
	offset := int(math.Round(coord.Longitude/15)) * 3600
	return time.FixedZone("", offset)
}
