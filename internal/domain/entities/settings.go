package entities

import (
	"time"
)

// Language is the translation language of the interface and Quran/hadith text.
type Language string

const (
	LanguageBengali Language = "bn"
	LanguageEnglish Language = "en"
)

// Valid reports whether the language is supported.
func (l Language) Valid() bool {
	return l == LanguageBengali || l == LanguageEnglish
}

const DefaultCalculationMethod = 1

// UserSettings stores user preferences.
type UserSettings struct {
	UserID            int64
	Name              string
	Language          Language
	CalculationMethod int
	Location          *GeoCoordinate // nil until the user shares a location
	City              string
	Onboarded         bool
	DarkMode          bool
	PrayerAlerts      bool // notify when a prayer time begins
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:            userID,
		Language:          LanguageBengali,
		CalculationMethod: DefaultCalculationMethod,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// LocationOrDefault returns the user's location, or Dhaka when none was shared.
// The second value is false when the default was used.
func (s *UserSettings) LocationOrDefault() (GeoCoordinate, string, bool) {
	if s == nil || s.Location == nil {
		return Dhaka, DefaultCity, false
	}
	city := s.City
	if city == "" {
		city = s.Location.String()
	}
	return *s.Location, city, true
}
