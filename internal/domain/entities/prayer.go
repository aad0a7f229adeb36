package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClock = errors.New("invalid clock time")

// PrayerLabel names one of the six daily time points.
type PrayerLabel string

const (
	Fajr    PrayerLabel = "Fajr"
	Sunrise PrayerLabel = "Sunrise"
	Dhuhr   PrayerLabel = "Dhuhr"
	Asr     PrayerLabel = "Asr"
	Maghrib PrayerLabel = "Maghrib"
	Isha    PrayerLabel = "Isha"
)

// ScheduleLabels lists the six points in their natural daily order.
var ScheduleLabels = [6]PrayerLabel{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// IsPrayer reports whether the label is one of the five prayers. Sunrise is not.
func (l PrayerLabel) IsPrayer() bool {
	switch l {
	case Fajr, Dhuhr, Asr, Maghrib, Isha:
		return true
	}
	return false
}

// MinutesPerDay is the length of a day in clock minutes.
const MinutesPerDay = 24 * 60

// Clock is a wall-clock time of day in minutes since midnight, [0, 1440).
type Clock int

// NewClock builds a Clock from hours and minutes.
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidClock, hour, minute)
	}
	return Clock(hour*60 + minute), nil
}

// ClockOf returns the time of day of t in its own location.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// ParseClock parses "HH:MM". Providers sometimes append a zone note
// such as "05:01 (+06)"; everything after the first field is ignored.
func ParseClock(s string) (Clock, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidClock)
	}

	hh, mm, ok := strings.Cut(fields[0], ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return NewClock(h, m)
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// String formats the clock as 24-hour "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Format12Hour formats the clock as "5:01 AM".
func (c Clock) Format12Hour() string {
	h := c.Hour()
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute(), period)
}

// PrayerTimePoint is a labeled time of day.
type PrayerTimePoint struct {
	Label PrayerLabel `json:"label"`
	Clock Clock       `json:"clock"`
}

// DailySchedule is one day's set of six time points. It is regenerated as a whole
// whenever the location or calculation method changes; points are never edited one by one.
type DailySchedule struct {
	Date     string             `json:"date"`               // yyyy-mm-dd in the observer's zone
	Timezone string             `json:"timezone,omitempty"` // IANA zone reported by the provider
	Points   [6]PrayerTimePoint `json:"points"`
}

// NewDailySchedule builds a schedule from a label->clock map; all six labels are required.
func NewDailySchedule(date string, clocks map[PrayerLabel]Clock) (DailySchedule, error) {
	s := DailySchedule{Date: date}
	for i, label := range ScheduleLabels {
		c, ok := clocks[label]
		if !ok {
			return DailySchedule{}, fmt.Errorf("schedule missing %s", label)
		}
		s.Points[i] = PrayerTimePoint{Label: label, Clock: c}
	}
	return s, nil
}

// Prayers returns the five prayer points, Sunrise excluded, in schedule order.
func (s DailySchedule) Prayers() []PrayerTimePoint {
	out := make([]PrayerTimePoint, 0, 5)
	for _, p := range s.Points {
		if p.Label.IsPrayer() {
			out = append(out, p)
		}
	}
	return out
}

// At returns the point with the given label.
func (s DailySchedule) At(label PrayerLabel) (PrayerTimePoint, bool) {
	for _, p := range s.Points {
		if p.Label == label {
			return p, true
		}
	}
	return PrayerTimePoint{}, false
}

// Location returns the observer's time zone, UTC when it is unknown.
func (s DailySchedule) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CalculationMethod identifies a prayer-time calculation convention of the provider.
type CalculationMethod struct {
	ID   int
	Name string
}

// CalculationMethods are the conventions offered to users.
var CalculationMethods = []CalculationMethod{
	{ID: 1, Name: "University of Islamic Sciences, Karachi"},
	{ID: 2, Name: "Islamic Society of North America (ISNA)"},
	{ID: 3, Name: "Muslim World League"},
	{ID: 4, Name: "Umm Al-Qura University, Makkah"},
	{ID: 5, Name: "Egyptian General Authority of Survey"},
}

// LookupCalculationMethod finds a method by id.
func LookupCalculationMethod(id int) (CalculationMethod, bool) {
	for _, m := range CalculationMethods {
		if m.ID == id {
			return m, true
		}
	}
	return CalculationMethod{}, false
}
