package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

const (
	defaultAlertSchedule      = "* * * * *"
	defaultAlertBatchSize     = 100
	defaultAlertMaxConcurrent = 10
)

// ErrRecipientBlocked means the user blocked the bot and cannot receive messages.
var ErrRecipientBlocked = errors.New("recipient blocked the bot")

// AlertOptions tunes the alert dispatcher.
type AlertOptions struct {
	Schedule      string // cron spec
	BatchSize     int
	MaxConcurrent int
}

// PrayerAlertService notifies subscribers when a prayer time begins, with batch processing.
type PrayerAlertService struct {
	alertRepo AlertRepository
	users     UserDeactivator
	prayer    *PrayerService
	notifier  AlertNotifier
	opts      AlertOptions
	logger    *zap.Logger
}

// NewPrayerAlertService creates a new prayer alert service.
func NewPrayerAlertService(
	alertRepo AlertRepository,
	users UserDeactivator,
	prayer *PrayerService,
	opts AlertOptions,
	logger *zap.Logger,
) *PrayerAlertService {
	if opts.Schedule == "" {
		opts.Schedule = defaultAlertSchedule
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultAlertBatchSize
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultAlertMaxConcurrent
	}
	return &PrayerAlertService{
		alertRepo: alertRepo,
		users:     users,
		prayer:    prayer,
		opts:      opts,
		logger:    logger,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *PrayerAlertService) SetNotifier(notifier AlertNotifier) {
	s.notifier = notifier
}

// Start runs the cron dispatcher until ctx is done.
func (s *PrayerAlertService) Start(ctx context.Context) {
	s.logger.Info("prayer alert service started")

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.opts.Schedule, func() {
		if _, err := s.Dispatch(ctx, time.Now()); err != nil {
			s.logger.Error("failed to dispatch prayer alerts", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.String("schedule", s.opts.Schedule), zap.Error(err))
		return
	}

	c.Start()
	s.logger.Info("cron scheduler started", zap.String("schedule", s.opts.Schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("prayer alert service stopped")
}

// Dispatch sends every alert due at now and returns how many were sent.
func (s *PrayerAlertService) Dispatch(ctx context.Context, now time.Time) (int, error) {
	if s.notifier == nil {
		return 0, fmt.Errorf("notifier not initialized")
	}

	offset := 0
	totalSent := 0

	for {
		subs, err := s.alertRepo.GetSubscribersBatch(ctx, s.opts.BatchSize, offset)
		if err != nil {
			return totalSent, fmt.Errorf("get subscribers batch: %w", err)
		}

		if len(subs) == 0 {
			break
		}

		totalSent += s.processBatch(ctx, subs, now)

		if len(subs) < s.opts.BatchSize {
			break
		}

		offset += s.opts.BatchSize
	}

	if totalSent > 0 {
		s.logger.Info("prayer alerts sent", zap.Int("total_sent", totalSent))
	}

	return totalSent, nil
}

// processBatch processes a batch of subscribers concurrently.
func (s *PrayerAlertService) processBatch(ctx context.Context, subs []*entities.AlertSubscriber, now time.Time) int {
	sem := make(chan struct{}, s.opts.MaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	for _, sub := range subs {
		wg.Add(1)
		sem <- struct{}{} // Acquire

		go func() {
			defer wg.Done()
			defer func() { <-sem }() // Release

			ok, err := s.processSubscriber(ctx, sub, now)
			if err != nil {
				s.logger.Error("failed to process prayer alert",
					zap.Int64("user_id", sub.UserID),
					zap.Error(err))
				return
			}
			if ok {
				mu.Lock()
				sent++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return sent
}

// processSubscriber sends an alert if a prayer begins at the subscriber's current local minute.
func (s *PrayerAlertService) processSubscriber(ctx context.Context, sub *entities.AlertSubscriber, now time.Time) (bool, error) {
	times, err := s.prayer.Times(ctx, sub.Location, sub.CalculationMethod, now)
	if err != nil {
		return false, fmt.Errorf("get prayer times: %w", err)
	}

	local := now.In(times.Schedule.Location())
	point, ok := dueAt(times.Schedule, entities.ClockOf(local))
	if !ok {
		return false, nil
	}

	day := local.Format(time.DateOnly)
	first, err := s.alertRepo.MarkSent(ctx, sub.UserID, day, point.Label)
	if err != nil {
		return false, fmt.Errorf("mark sent: %w", err)
	}
	if !first {
		return false, nil
	}

	alert := entities.PrayerAlert{Label: point.Label, Clock: point.Clock, Language: sub.Language}
	if err := s.notifier.SendPrayerAlert(sub.ChatID, alert); err != nil {
		if errors.Is(err, ErrRecipientBlocked) {
			return false, s.deactivate(ctx, sub.UserID)
		}
		return false, fmt.Errorf("send notification: %w", err)
	}

	s.logger.Info("prayer alert sent",
		zap.Int64("user_id", sub.UserID),
		zap.String("prayer", string(point.Label)),
		zap.String("day", day),
	)
	return true, nil
}

// deactivate drops a blocked user from future batches. Messaging the bot again
// reactivates them.
func (s *PrayerAlertService) deactivate(ctx context.Context, userID int64) error {
	if err := s.users.Deactivate(ctx, userID); err != nil {
		return fmt.Errorf("deactivate blocked user: %w", err)
	}
	s.logger.Info("user blocked the bot, alerts stopped", zap.Int64("user_id", userID))
	return nil
}

// dueAt returns the prayer (Sunrise excluded) whose time equals now.
func dueAt(schedule entities.DailySchedule, now entities.Clock) (entities.PrayerTimePoint, bool) {
	for _, p := range schedule.Prayers() {
		if p.Clock == now {
			return p, true
		}
	}
	return entities.PrayerTimePoint{}, false
}
