package entities

// AlertSubscriber is a user who asked to be notified when a prayer time begins.
type AlertSubscriber struct {
	UserID            int64
	ChatID            int64
	Language          Language
	CalculationMethod int
	Location          GeoCoordinate
}

// PrayerAlert is the notification sent when a prayer time begins.
type PrayerAlert struct {
	Label    PrayerLabel
	Clock    Clock
	Language Language
}
