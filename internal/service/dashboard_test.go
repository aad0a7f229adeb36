package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "শুভ রাত্রি"},
		{4, "শুভ রাত্রি"},
		{5, "শুভ সকাল"},
		{11, "শুভ সকাল"},
		{12, "শুভ দুপুর"},
		{16, "শুভ দুপুর"},
		{17, "শুভ সন্ধ্যা"},
		{19, "শুভ সন্ধ্যা"},
		{20, "শুভ রাত্রি"},
		{23, "শুভ রাত্রি"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Greeting(tt.hour), "hour %d", tt.hour)
	}
}

func newTestDashboardService(t *testing.T) (*DashboardService, *fakeSettingsRepo, *fakePrayerProvider, *fakeReadingRepo) {
	t.Helper()

	settingsRepo := newFakeSettingsRepo()
	provider := &fakePrayerProvider{clocks: testClocks()}
	prayerSvc := NewPrayerService(settingsRepo, provider, newFakeScheduleCache(), zap.NewNop())
	quranSvc, _, _, reading := newTestQuranService()

	svc := NewDashboardService(NewSettingsService(settingsRepo), prayerSvc, quranSvc, zap.NewNop())
	return svc, settingsRepo, provider, reading
}

func TestDashboardService_Build(t *testing.T) {
	svc, settings, _, reading := newTestDashboardService(t)
	ctx := context.Background()

	require.NoError(t, settings.Create(ctx, 1))
	require.NoError(t, settings.CompleteOnboarding(ctx, 1, "Abdullah"))
	require.NoError(t, settings.UpdateLocation(ctx, 1, entities.Dhaka, "Dhaka"))
	require.NoError(t, reading.SaveLastRead(ctx, 1, entities.LastRead{Number: 18, Name: "Al-Kahf"}))

	d, err := svc.Build(ctx, 1, testNow)
	require.NoError(t, err)

	assert.Equal(t, "Abdullah", d.Name)
	assert.Equal(t, "শুভ সকাল", d.Greeting) // 06:00 in the schedule's zone
	assert.Equal(t, "6 Jumada al-Ula 1448 AH", d.HijriDate)
	require.NotNil(t, d.Window)
	assert.Equal(t, entities.Dhuhr, d.Window.Next.Label)
	require.NotNil(t, d.LastRead)
	assert.Equal(t, 18, d.LastRead.Number)
	assert.Empty(t, d.Notices)
}

func TestDashboardService_BuildDegrades(t *testing.T) {
	svc, _, provider, _ := newTestDashboardService(t)
	provider.err = errBoom
	provider.hijriErr = errBoom

	d, err := svc.Build(context.Background(), 2, testNow)
	require.NoError(t, err)

	assert.Nil(t, d.Times)
	assert.Nil(t, d.Window)
	assert.Nil(t, d.LastRead)
	assert.Equal(t, hijriUnavailable, d.HijriDate)
	require.Len(t, d.Notices, 1)
	assert.ErrorIs(t, d.Notices[0], entities.ErrProviderFailure)
}

func TestDashboardService_DefaultLocationNotice(t *testing.T) {
	svc, _, _, _ := newTestDashboardService(t)

	d, err := svc.Build(context.Background(), 3, testNow)
	require.NoError(t, err)

	require.NotNil(t, d.Times)
	assert.True(t, d.Times.DefaultLocation)
	assert.Contains(t, d.Notices, entities.ErrCapabilityUnavailable)
}
