package qibla

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

func TestBearingToTarget_KnownCities(t *testing.T) {
	tests := []struct {
		name     string
		observer entities.GeoCoordinate
		want     float64
	}{
		{"dhaka", entities.Dhaka, 277.5},
		{"london", entities.GeoCoordinate{Latitude: 51.5074, Longitude: -0.1278}, 119.0},
		{"new york", entities.GeoCoordinate{Latitude: 40.7128, Longitude: -74.0060}, 58.5},
		{"jakarta", entities.GeoCoordinate{Latitude: -6.2088, Longitude: 106.8456}, 295.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BearingToTarget(tt.observer, entities.Kaaba)
			assert.InDelta(t, tt.want, got, 0.5)
		})
	}
}

func TestBearingToTarget_CardinalDirections(t *testing.T) {
	origin := entities.GeoCoordinate{}

	assert.InDelta(t, 0, BearingToTarget(origin, entities.GeoCoordinate{Latitude: 10}), 1e-9)
	assert.InDelta(t, 90, BearingToTarget(origin, entities.GeoCoordinate{Longitude: 10}), 1e-9)
	assert.InDelta(t, 180, BearingToTarget(origin, entities.GeoCoordinate{Latitude: -10}), 1e-9)
	assert.InDelta(t, 270, BearingToTarget(origin, entities.GeoCoordinate{Longitude: -10}), 1e-9)
}

func TestBearingToTarget_AlwaysInRange(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lng := -180.0; lng <= 180; lng += 7.5 {
			observer := entities.GeoCoordinate{Latitude: lat, Longitude: lng}
			got := BearingToTarget(observer, entities.Kaaba)
			assert.GreaterOrEqual(t, got, 0.0, "observer %v", observer)
			assert.Less(t, got, 360.0, "observer %v", observer)
		}
	}
}

func TestQibla_FallsBackWithoutObserver(t *testing.T) {
	d := Qibla(nil)
	assert.True(t, d.Approximate)
	assert.Equal(t, DefaultBearing, d.Bearing)

	loc := entities.Dhaka
	d = Qibla(&loc)
	assert.False(t, d.Approximate)
	assert.InDelta(t, 277.5, d.Bearing, 0.5)
}

func TestRelativeBearing(t *testing.T) {
	assert.InDelta(t, 0, RelativeBearing(120, 120), 1e-9)
	assert.InDelta(t, 300, RelativeBearing(30, 90), 1e-9)
	assert.InDelta(t, 60, RelativeBearing(30, 330), 1e-9)
}

func TestCompassPoint(t *testing.T) {
	assert.Equal(t, "N", CompassPoint(0))
	assert.Equal(t, "N", CompassPoint(359))
	assert.Equal(t, "E", CompassPoint(90))
	assert.Equal(t, "W", CompassPoint(277.5))
	assert.Equal(t, "SE", CompassPoint(135))
}
