package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		wantErr  bool
	}{
		{"dhaka", 23.8103, 90.4125, false},
		{"poles and antimeridian", -90, 180, false},
		{"latitude too large", 90.5, 0, true},
		{"longitude too small", 0, -180.1, true},
		{"latitude NaN", math.NaN(), 10, true},
		{"longitude NaN", 23, math.NaN(), true},
		{"latitude +Inf", math.Inf(1), 10, true},
		{"longitude -Inf", 23, math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewGeoCoordinate(tt.lat, tt.lng)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
				assert.Equal(t, GeoCoordinate{}, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, c.Latitude)
			assert.Equal(t, tt.lng, c.Longitude)
		})
	}
}
