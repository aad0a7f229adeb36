package entities

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// GeoCoordinate is an immutable latitude/longitude pair in degrees.
type GeoCoordinate struct {
	Latitude  float64 `json:"lat"` // [-90, 90]
	Longitude float64 `json:"lng"` // [-180, 180]
}

var (
	// Kaaba is the qibla target.
	Kaaba = GeoCoordinate{Latitude: 21.422487, Longitude: 39.826206}

	// Dhaka is used when the user never shared a location.
	Dhaka = GeoCoordinate{Latitude: 23.8103, Longitude: 90.4125}
)

const DefaultCity = "Dhaka, Bangladesh"

// NewGeoCoordinate validates ranges and builds a coordinate.
func NewGeoCoordinate(lat, lng float64) (GeoCoordinate, error) {
	c := GeoCoordinate{Latitude: lat, Longitude: lng}
	if err := c.Validate(); err != nil {
		return GeoCoordinate{}, err
	}
	return c, nil
}

// Validate checks that both components are within range.
func (c GeoCoordinate) Validate() error {
	if !finite(c.Latitude) || !finite(c.Longitude) {
		return fmt.Errorf("%w: %v,%v is not a finite point", ErrInvalidCoordinate, c.Latitude, c.Longitude)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %.6f out of range", ErrInvalidCoordinate, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %.6f out of range", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c GeoCoordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}
