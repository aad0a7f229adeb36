package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/hadithapi"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres/repository"
)

var errBoom = errors.New("boom")

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[int64]*entities.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[int64]*entities.UserSettings)}
}

func (r *fakeSettingsRepo) Create(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.settings[userID]; !ok {
		r.settings[userID] = entities.NewUserSettings(userID)
	}
	return nil
}

func (r *fakeSettingsRepo) GetByUserID(_ context.Context, userID int64) (*entities.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[userID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSettingsRepo) update(userID int64, fn func(s *entities.UserSettings)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	fn(s)
	return nil
}

func (r *fakeSettingsRepo) CompleteOnboarding(_ context.Context, userID int64, name string) error {
	return r.update(userID, func(s *entities.UserSettings) { s.Name, s.Onboarded = name, true })
}

func (r *fakeSettingsRepo) UpdateName(_ context.Context, userID int64, name string) error {
	return r.update(userID, func(s *entities.UserSettings) { s.Name = name })
}

func (r *fakeSettingsRepo) UpdateLanguage(_ context.Context, userID int64, lang entities.Language) error {
	return r.update(userID, func(s *entities.UserSettings) { s.Language = lang })
}

func (r *fakeSettingsRepo) UpdateCalculationMethod(_ context.Context, userID int64, method int) error {
	return r.update(userID, func(s *entities.UserSettings) { s.CalculationMethod = method })
}

func (r *fakeSettingsRepo) UpdateLocation(_ context.Context, userID int64, coord entities.GeoCoordinate, city string) error {
	return r.update(userID, func(s *entities.UserSettings) { s.Location, s.City = &coord, city })
}

func (r *fakeSettingsRepo) ToggleDarkMode(_ context.Context, userID int64) (bool, error) {
	var v bool
	err := r.update(userID, func(s *entities.UserSettings) { s.DarkMode = !s.DarkMode; v = s.DarkMode })
	return v, err
}

func (r *fakeSettingsRepo) TogglePrayerAlerts(_ context.Context, userID int64) (bool, error) {
	var v bool
	err := r.update(userID, func(s *entities.UserSettings) { s.PrayerAlerts = !s.PrayerAlerts; v = s.PrayerAlerts })
	return v, err
}

type fakePrayerProvider struct {
	mu       sync.Mutex
	calls    int
	err      error
	hijriErr error
	clocks   map[entities.PrayerLabel]entities.Clock
}

func (p *fakePrayerProvider) Timings(_ context.Context, _ entities.GeoCoordinate, _ int, date time.Time) (entities.DailySchedule, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return entities.DailySchedule{}, p.err
	}
	return entities.NewDailySchedule(date.Format(time.DateOnly), p.clocks)
}

func (p *fakePrayerProvider) HijriDate(_ context.Context, _ time.Time) (string, error) {
	if p.hijriErr != nil {
		return "", p.hijriErr
	}
	return "6 Jumada al-Ula 1448 AH", nil
}

func (p *fakePrayerProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type fakeScheduleCache struct {
	mu      sync.Mutex
	entries map[string]entities.DailySchedule
	last    map[string]entities.DailySchedule
}

func newFakeScheduleCache() *fakeScheduleCache {
	return &fakeScheduleCache{
		entries: make(map[string]entities.DailySchedule),
		last:    make(map[string]entities.DailySchedule),
	}
}

func cacheKey(coord entities.GeoCoordinate, method int) string {
	return fmt.Sprintf("%s:%d", coord, method)
}

func (c *fakeScheduleCache) Schedule(_ context.Context, coord entities.GeoCoordinate, method int, date string) (entities.DailySchedule, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[cacheKey(coord, method)+":"+date]
	return s, ok, nil
}

func (c *fakeScheduleCache) LastSchedule(_ context.Context, coord entities.GeoCoordinate, method int) (entities.DailySchedule, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.last[cacheKey(coord, method)]
	return s, ok, nil
}

func (c *fakeScheduleCache) StoreSchedule(_ context.Context, coord entities.GeoCoordinate, method int, s entities.DailySchedule) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(coord, method)+":"+s.Date] = s
	c.last[cacheKey(coord, method)] = s
	return nil
}

type fakeQuranProvider struct {
	mu       sync.Mutex
	surahs   []entities.Surah
	ayahs    map[string][]entities.Ayah // "chapter/edition"
	err      error
	listCall int
}

func (p *fakeQuranProvider) Surahs(_ context.Context) ([]entities.Surah, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listCall++
	if p.err != nil {
		return nil, p.err
	}
	return p.surahs, nil
}

func (p *fakeQuranProvider) Ayahs(_ context.Context, chapter int, edition string) ([]entities.Ayah, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	a, ok := p.ayahs[fmt.Sprintf("%d/%s", chapter, edition)]
	if !ok {
		return nil, errBoom
	}
	return a, nil
}

type fakeSurahCache struct {
	surahs []entities.Surah
	stored int
}

func (c *fakeSurahCache) Surahs(_ context.Context) ([]entities.Surah, bool, error) {
	return c.surahs, c.surahs != nil, nil
}

func (c *fakeSurahCache) StoreSurahs(_ context.Context, surahs []entities.Surah) error {
	c.surahs = surahs
	c.stored++
	return nil
}

type fakeReadingRepo struct {
	mu   sync.Mutex
	last map[int64]entities.LastRead
}

func newFakeReadingRepo() *fakeReadingRepo {
	return &fakeReadingRepo{last: make(map[int64]entities.LastRead)}
}

func (r *fakeReadingRepo) SaveLastRead(_ context.Context, userID int64, last entities.LastRead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last[userID] = last
	return nil
}

func (r *fakeReadingRepo) GetLastRead(_ context.Context, userID int64) (*entities.LastRead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.last[userID]
	if !ok {
		return nil, repository.ErrLastReadNotFound
	}
	return &l, nil
}

type fakeTasbihRepo struct {
	mu     sync.Mutex
	totals map[int64]int64
	err    error
}

func newFakeTasbihRepo() *fakeTasbihRepo {
	return &fakeTasbihRepo{totals: make(map[int64]int64)}
}

func (r *fakeTasbihRepo) IncrementTotal(_ context.Context, userID int64, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.totals[userID] += delta
	return r.totals[userID], nil
}

func (r *fakeTasbihRepo) GetTotal(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totals[userID], r.err
}

type fakeHadithProvider struct {
	mu       sync.Mutex
	editions map[string][]hadithapi.Narration
	calls    int
}

func (p *fakeHadithProvider) Hadiths(_ context.Context, edition string) ([]hadithapi.Narration, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	n, ok := p.editions[edition]
	if !ok {
		return nil, errBoom
	}
	return n, nil
}

type fakeHaptic struct {
	pulses int
	err    error
}

func (h *fakeHaptic) Pulse(_ context.Context, _ int64) error {
	h.pulses++
	return h.err
}

type sentMark struct {
	userID int64
	day    string
	label  entities.PrayerLabel
}

type fakeAlertRepo struct {
	mu   sync.Mutex
	subs []*entities.AlertSubscriber
	sent map[sentMark]bool
}

func (r *fakeAlertRepo) GetSubscribersBatch(_ context.Context, limit, offset int) ([]*entities.AlertSubscriber, error) {
	if offset >= len(r.subs) {
		return nil, nil
	}
	return r.subs[offset:min(offset+limit, len(r.subs))], nil
}

func (r *fakeAlertRepo) MarkSent(_ context.Context, userID int64, day string, label entities.PrayerLabel) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sent == nil {
		r.sent = make(map[sentMark]bool)
	}
	k := sentMark{userID, day, label}
	if r.sent[k] {
		return false, nil
	}
	r.sent[k] = true
	return true, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	alerts  map[int64][]entities.PrayerAlert
	blocked map[int64]bool
}

func (n *fakeNotifier) SendPrayerAlert(chatID int64, alert entities.PrayerAlert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.blocked[chatID] {
		return fmt.Errorf("send prayer alert: %w", ErrRecipientBlocked)
	}
	if n.alerts == nil {
		n.alerts = make(map[int64][]entities.PrayerAlert)
	}
	n.alerts[chatID] = append(n.alerts[chatID], alert)
	return nil
}

func testClocks() map[entities.PrayerLabel]entities.Clock {
	return map[entities.PrayerLabel]entities.Clock{
		entities.Fajr:    entities.Clock(4*60 + 41),
		entities.Sunrise: entities.Clock(5*60 + 57),
		entities.Dhuhr:   entities.Clock(12 * 60),
		entities.Asr:     entities.Clock(15*60 + 6),
		entities.Maghrib: entities.Clock(17*60 + 33),
		entities.Isha:    entities.Clock(18*60 + 46),
	}
}

type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[int64]*entities.User
	inactive []int64
	err      error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entities.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, user *entities.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, exists := r.users[user.ID]
	saved := *user
	r.users[user.ID] = &saved
	return !exists, nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.IsActive = false
	r.inactive = append(r.inactive, userID)
	return nil
}
