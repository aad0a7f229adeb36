package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/domain/prayer"
)

const hijriUnavailable = "হিযরী তারিখ পাওয়া যায়নি"

// Dashboard is the home screen summary.
type Dashboard struct {
	Name      string
	Greeting  string
	HijriDate string
	Times     *PrayerTimes   // nil when no schedule could be obtained
	Window    *prayer.Window // nil together with Times
	LastRead  *entities.LastRead
	Notices   []error // degraded parts, e.g. ErrProviderFailure
}

type DashboardService struct {
	settings *SettingsService
	prayer   *PrayerService
	quran    *QuranService
	logger   *zap.Logger
}

func NewDashboardService(
	settings *SettingsService,
	prayer *PrayerService,
	quran *QuranService,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		settings: settings,
		prayer:   prayer,
		quran:    quran,
		logger:   logger,
	}
}

// Build assembles the dashboard. Only a settings failure is fatal; every other
// part degrades and is reported in Notices.
func (s *DashboardService) Build(ctx context.Context, userID int64, now time.Time) (*Dashboard, error) {
	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	d := &Dashboard{Name: settings.Name}
	local := now

	times, err := s.prayer.Today(ctx, userID, now)
	if err != nil {
		s.logger.Warn("dashboard prayer times unavailable", zap.Int64("user_id", userID), zap.Error(err))
		d.Notices = append(d.Notices, err)
	} else {
		w := WindowAt(times.Schedule, now)
		d.Times, d.Window = times, &w
		local = now.In(times.Schedule.Location())
		if times.Stale {
			d.Notices = append(d.Notices, entities.ErrProviderFailure)
		}
		if times.DefaultLocation {
			d.Notices = append(d.Notices, entities.ErrCapabilityUnavailable)
		}
	}
	d.Greeting = Greeting(local.Hour())

	hijri, err := s.prayer.HijriDate(ctx, local)
	if err != nil {
		s.logger.Warn("hijri date unavailable", zap.Error(err))
		hijri = hijriUnavailable
	}
	d.HijriDate = hijri

	last, err := s.quran.LastRead(ctx, userID)
	if err != nil {
		s.logger.Warn("last read unavailable", zap.Int64("user_id", userID), zap.Error(err))
	}
	d.LastRead = last

	return d, nil
}

// Greeting returns the salutation for an hour of the day (0-23).
func Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "শুভ সকাল"
	case hour >= 12 && hour < 17:
		return "শুভ দুপুর"
	case hour >= 17 && hour < 20:
		return "শুভ সন্ধ্যা"
	default:
		return "শুভ রাত্রি"
	}
}
