package prayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

func clock(t *testing.T, s string) entities.Clock {
	t.Helper()
	c, err := entities.ParseClock(s)
	require.NoError(t, err)
	return c
}

func schedule(t *testing.T, fajr, sunrise, dhuhr, asr, maghrib, isha string) entities.DailySchedule {
	t.Helper()
	s, err := entities.NewDailySchedule("2026-10-18", map[entities.PrayerLabel]entities.Clock{
		entities.Fajr:    clock(t, fajr),
		entities.Sunrise: clock(t, sunrise),
		entities.Dhuhr:   clock(t, dhuhr),
		entities.Asr:     clock(t, asr),
		entities.Maghrib: clock(t, maghrib),
		entities.Isha:    clock(t, isha),
	})
	require.NoError(t, err)
	return s
}

func dhakaSchedule(t *testing.T) entities.DailySchedule {
	return schedule(t, "05:00", "06:10", "12:00", "15:30", "18:00", "20:00")
}

func TestCurrentWindow_MidDay(t *testing.T) {
	w := CurrentWindow(dhakaSchedule(t), clock(t, "13:00"))

	assert.Equal(t, entities.Dhuhr, w.Prev.Label)
	assert.Equal(t, entities.Asr, w.Next.Label)
	assert.Equal(t, 210, w.Span)
	assert.Equal(t, 60, w.Elapsed)
	assert.InDelta(t, 60.0/210*100, w.Progress, 1e-9)
	assert.Equal(t, 150, w.Remaining())
}

func TestCurrentWindow_TieCountsAsPassed(t *testing.T) {
	w := CurrentWindow(dhakaSchedule(t), clock(t, "12:00"))

	assert.Equal(t, entities.Dhuhr, w.Prev.Label)
	assert.Equal(t, entities.Asr, w.Next.Label)
	assert.Equal(t, 0, w.Elapsed)
	assert.Equal(t, 0.0, w.Progress)
}

func TestCurrentWindow_SunriseIsNeverNext(t *testing.T) {
	w := CurrentWindow(dhakaSchedule(t), clock(t, "05:30"))

	assert.Equal(t, entities.Fajr, w.Prev.Label)
	assert.Equal(t, entities.Dhuhr, w.Next.Label)
}

func TestCurrentWindow_AfterIshaWrapsToFajr(t *testing.T) {
	w := CurrentWindow(dhakaSchedule(t), clock(t, "23:00"))

	assert.Equal(t, entities.Isha, w.Prev.Label)
	assert.Equal(t, entities.Fajr, w.Next.Label)
	assert.Equal(t, 540, w.Span)
	assert.Equal(t, 180, w.Elapsed)
}

func TestCurrentWindow_PreFajrIsYesterdaysIsha(t *testing.T) {
	w := CurrentWindow(dhakaSchedule(t), clock(t, "00:30"))

	assert.Equal(t, entities.Isha, w.Prev.Label)
	assert.Equal(t, entities.Fajr, w.Next.Label)
	// 20:00 -> 05:00 next day, 00:30 is 270 minutes in.
	assert.Equal(t, 540, w.Span)
	assert.Equal(t, 270, w.Elapsed)
	assert.InDelta(t, 50.0, w.Progress, 1e-9)
}

func TestCurrentWindow_Midnight(t *testing.T) {
	w := CurrentWindow(dhakaSchedule(t), 0)

	assert.Equal(t, entities.Isha, w.Prev.Label)
	assert.Equal(t, entities.Fajr, w.Next.Label)
	assert.Equal(t, 240, w.Elapsed)
}

func TestCurrentWindow_AtIsha(t *testing.T) {
	w := CurrentWindow(dhakaSchedule(t), clock(t, "20:00"))

	assert.Equal(t, entities.Isha, w.Prev.Label)
	assert.Equal(t, entities.Fajr, w.Next.Label)
	assert.Equal(t, 0.0, w.Progress)
}

func TestCurrentWindow_UnsortedInputIsSorted(t *testing.T) {
	// High-latitude summer: Isha after midnight sorts before Fajr.
	s := schedule(t, "02:30", "03:40", "13:10", "17:30", "22:10", "00:20")

	w := CurrentWindow(s, clock(t, "01:00"))
	assert.Equal(t, entities.Isha, w.Prev.Label)
	assert.Equal(t, entities.Fajr, w.Next.Label)
	assert.Equal(t, 130, w.Span)

	w = CurrentWindow(s, clock(t, "23:00"))
	assert.Equal(t, entities.Maghrib, w.Prev.Label)
	assert.Equal(t, entities.Isha, w.Next.Label)
	assert.Equal(t, 130, w.Span)
	assert.Equal(t, 50, w.Elapsed)
}

func TestCurrentWindow_TotalOverTheDay(t *testing.T) {
	s := dhakaSchedule(t)
	for m := 0; m < entities.MinutesPerDay; m++ {
		w := CurrentWindow(s, entities.Clock(m))

		require.True(t, w.Next.Label.IsPrayer(), "minute %d", m)
		require.True(t, w.Prev.Label.IsPrayer(), "minute %d", m)
		require.NotEqual(t, w.Prev.Label, w.Next.Label, "minute %d", m)
		require.GreaterOrEqual(t, w.Progress, 0.0, "minute %d", m)
		require.LessOrEqual(t, w.Progress, 100.0, "minute %d", m)
		require.Greater(t, w.Span, 0, "minute %d", m)
	}
}

func TestCurrentWindow_DegenerateScheduleStaysBounded(t *testing.T) {
	s := schedule(t, "12:00", "12:00", "12:00", "12:00", "12:00", "12:00")

	w := CurrentWindow(s, clock(t, "13:00"))
	assert.Equal(t, entities.MinutesPerDay, w.Span)
	assert.GreaterOrEqual(t, w.Progress, 0.0)
	assert.LessOrEqual(t, w.Progress, 100.0)
}
