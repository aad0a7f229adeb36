// Package qibla computes the direction of prayer from an observer's position.
package qibla

import (
	"math"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

// DefaultBearing is shown when the observer's position is unknown.
const DefaultBearing = 291.0

// Direction is a qibla bearing in degrees clockwise from true north.
type Direction struct {
	Bearing     float64 `json:"bearing"`
	Approximate bool    `json:"approximate"` // true when DefaultBearing was used
}

// BearingToTarget returns the initial great-circle bearing from observer to target,
// in degrees within [0, 360). The result for observer == target is meaningless.
func BearingToTarget(observer, target entities.GeoCoordinate) float64 {
	phi1 := radians(observer.Latitude)
	phi2 := radians(target.Latitude)
	dLambda := radians(target.Longitude - observer.Longitude)

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)

	return normalize(degrees(math.Atan2(y, x)))
}

// Qibla returns the bearing toward the Kaaba. A nil observer yields DefaultBearing.
func Qibla(observer *entities.GeoCoordinate) Direction {
	if observer == nil {
		return Direction{Bearing: DefaultBearing, Approximate: true}
	}
	return Direction{Bearing: BearingToTarget(*observer, entities.Kaaba)}
}

// RelativeBearing is the angle to turn from the device heading to face the bearing.
func RelativeBearing(bearing, heading float64) float64 {
	return normalize(bearing - heading)
}

// CompassPoint names the 16-wind compass sector of a bearing ("N", "NNE", ...).
func CompassPoint(bearing float64) string {
	points := [16]string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}
	idx := int(math.Floor(normalize(bearing)/22.5+0.5)) % 16
	return points[idx]
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg+360, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod can return 360 for tiny negative inputs after the addition above.
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
