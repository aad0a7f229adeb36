package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

var testNow = time.Date(2026, time.October, 18, 6, 0, 0, 0, time.UTC)

func newTestPrayerService(t *testing.T) (*PrayerService, *fakeSettingsRepo, *fakePrayerProvider, *fakeScheduleCache) {
	t.Helper()

	settings := newFakeSettingsRepo()
	provider := &fakePrayerProvider{clocks: testClocks()}
	cache := newFakeScheduleCache()

	return NewPrayerService(settings, provider, cache, zap.NewNop()), settings, provider, cache
}

func TestPrayerService_TimesFetchesOnceThenServesCache(t *testing.T) {
	svc, _, provider, cache := newTestPrayerService(t)
	ctx := context.Background()

	times, err := svc.Times(ctx, entities.Dhaka, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", times.Schedule.Date)
	assert.False(t, times.Stale)
	assert.Equal(t, 1, provider.callCount())

	_, found, _ := cache.Schedule(ctx, entities.Dhaka, 1, "2026-10-18")
	assert.True(t, found)

	again, err := svc.Times(ctx, entities.Dhaka, 1, testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, times.Schedule, again.Schedule)
	assert.Equal(t, 1, provider.callCount())
}

func TestPrayerService_TimesUsesObserverDate(t *testing.T) {
	svc, _, _, _ := newTestPrayerService(t)

	// 20:00 UTC is already the next day in Dhaka (UTC+6).
	late := time.Date(2026, time.October, 18, 20, 0, 0, 0, time.UTC)
	times, err := svc.Times(context.Background(), entities.Dhaka, 1, late)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", times.Schedule.Date)
}

func TestPrayerService_ProviderFailureKeepsLastKnownGood(t *testing.T) {
	svc, _, provider, _ := newTestPrayerService(t)
	ctx := context.Background()

	yesterday := testNow.Add(-24 * time.Hour)
	_, err := svc.Times(ctx, entities.Dhaka, 1, yesterday)
	require.NoError(t, err)

	provider.err = errBoom

	times, err := svc.Times(ctx, entities.Dhaka, 1, testNow)
	require.NoError(t, err)
	assert.True(t, times.Stale)
	assert.Equal(t, "2026-10-17", times.Schedule.Date)
}

func TestPrayerService_ProviderFailureWithoutHistory(t *testing.T) {
	svc, _, provider, _ := newTestPrayerService(t)
	provider.err = errBoom

	_, err := svc.Times(context.Background(), entities.Dhaka, 1, testNow)
	assert.ErrorIs(t, err, entities.ErrProviderFailure)
}

func TestPrayerService_TimesValidation(t *testing.T) {
	svc, _, _, _ := newTestPrayerService(t)

	_, err := svc.Times(context.Background(), entities.GeoCoordinate{Latitude: 91}, 1, testNow)
	assert.ErrorIs(t, err, entities.ErrInvalidCoordinate)

	times, err := svc.Times(context.Background(), entities.Dhaka, 99, testNow)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultCalculationMethod, times.Method)
}

func TestPrayerService_TodayDefaultsToDhaka(t *testing.T) {
	svc, settings, _, _ := newTestPrayerService(t)
	require.NoError(t, settings.Create(context.Background(), 1))

	times, err := svc.Today(context.Background(), 1, testNow)
	require.NoError(t, err)
	assert.True(t, times.DefaultLocation)
	assert.Equal(t, entities.Dhaka, times.Coordinate)
	assert.Equal(t, entities.DefaultCity, times.City)
}

func TestPrayerService_TodayUsesSharedLocation(t *testing.T) {
	svc, settings, _, _ := newTestPrayerService(t)
	ctx := context.Background()
	require.NoError(t, settings.Create(ctx, 1))

	london := entities.GeoCoordinate{Latitude: 51.5074, Longitude: -0.1278}
	require.NoError(t, settings.UpdateLocation(ctx, 1, london, "London"))

	times, err := svc.Today(ctx, 1, testNow)
	require.NoError(t, err)
	assert.False(t, times.DefaultLocation)
	assert.Equal(t, "London", times.City)
	assert.Equal(t, london, times.Coordinate)
}

func TestPrayerService_Window(t *testing.T) {
	svc, settings, _, _ := newTestPrayerService(t)
	require.NoError(t, settings.Create(context.Background(), 1))

	// The fake schedule carries no zone, so the window is evaluated in UTC: 06:00.
	_, w, err := svc.Window(context.Background(), 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, entities.Fajr, w.Prev.Label)
	assert.Equal(t, entities.Dhuhr, w.Next.Label)
	assert.Equal(t, 12*60-(4*60+41), w.Span)
	assert.Equal(t, 6*60-(4*60+41), w.Elapsed)
}

func TestPrayerService_HijriDateFailure(t *testing.T) {
	svc, _, provider, _ := newTestPrayerService(t)
	provider.hijriErr = errBoom

	_, err := svc.HijriDate(context.Background(), testNow)
	assert.ErrorIs(t, err, entities.ErrProviderFailure)
}

func TestSolarZone(t *testing.T) {
	_, offset := testNow.In(solarZone(entities.Dhaka)).Zone()
	assert.Equal(t, 6*3600, offset)

	_, offset = testNow.In(solarZone(entities.GeoCoordinate{Latitude: 40.7, Longitude: -74})).Zone()
	assert.Equal(t, -5*3600, offset)
}
