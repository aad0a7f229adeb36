// Package prayer tracks where the current moment falls within the day's prayer schedule.
package prayer

import (
	"sort"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

// Window is the interval between the most recent prayer and the upcoming one.
type Window struct {
	Prev     entities.PrayerTimePoint `json:"prev"`
	Next     entities.PrayerTimePoint `json:"next"`
	Span     int                      `json:"span_minutes"`
	Elapsed  int                      `json:"elapsed_minutes"`
	Progress float64                  `json:"progress"` // percent, [0, 100]
}

// Remaining returns the minutes left until Next.
func (w Window) Remaining() int {
	return w.Span - w.Elapsed
}

// CurrentWindow locates now within the schedule's five prayers (Sunrise is ignored).
//
// A prayer whose time equals now counts as already begun, so it is Prev and never Next.
// After Isha, Next wraps to Fajr of the following day; before Fajr, Prev is the
// previous day's Isha. Both wraps add a full day to the later end of the interval.
func CurrentWindow(schedule entities.DailySchedule, now entities.Clock) Window {
	prayers := schedule.Prayers()
	sort.SliceStable(prayers, func(i, j int) bool {
		return prayers[i].Clock < prayers[j].Clock
	})

	var (
		next, prev         entities.PrayerTimePoint
		haveNext, havePrev bool
	)

	for _, p := range prayers {
		if p.Clock > now {
			next, haveNext = p, true
			break
		}
	}
	if !haveNext {
		// Past the last prayer: the next one is tomorrow's first.
		next = prayers[0]
	}

	for i := len(prayers) - 1; i >= 0; i-- {
		if prayers[i].Clock <= now {
			prev, havePrev = prayers[i], true
			break
		}
	}
	if !havePrev {
		// Before the first prayer: still inside yesterday's last window.
		prev = prayers[len(prayers)-1]
	}

	start := int(prev.Clock)
	end := int(next.Clock)
	if end <= start {
		end += entities.MinutesPerDay
	}

	current := int(now)
	if current < start {
		current += entities.MinutesPerDay
	}

	span := end - start
	elapsed := current - start

	return Window{
		Prev:     prev,
		Next:     next,
		Span:     span,
		Elapsed:  elapsed,
		Progress: clamp(float64(elapsed)/float64(span)*100, 0, 100),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
