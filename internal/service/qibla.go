package service

import (
	"context"
	"fmt"
	"math"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/domain/qibla"
)

// CompassReading is the qibla direction as seen from a device heading.
type CompassReading struct {
	Bearing  float64 `json:"bearing"`
	Heading  float64 `json:"heading"`
	Relative float64 `json:"relative"` // degrees to turn clockwise
	Point    string  `json:"point"`
}

type QiblaService struct {
	settings SettingsRepository
}

func NewQiblaService(settings SettingsRepository) *QiblaService {
	return &QiblaService{settings: settings}
}

// Direction returns the qibla bearing for the user's location. Without a
// location it returns the default bearing and ErrCapabilityUnavailable.
func (s *QiblaService) Direction(ctx context.Context, userID int64) (qibla.Direction, error) {
	settings, err := s.settings.GetByUserID(ctx, userID)
	if err != nil {
		return qibla.Direction{}, fmt.Errorf("get settings: %w", err)
	}

	dir := qibla.Qibla(settings.Location)
	if dir.Approximate {
		return dir, entities.ErrCapabilityUnavailable
	}
	return dir, nil
}

// DirectionFrom returns the qibla bearing for a coordinate.
func (s *QiblaService) DirectionFrom(coord entities.GeoCoordinate) (qibla.Direction, error) {
	if err := coord.Validate(); err != nil {
		return qibla.Direction{}, err
	}
	return qibla.Qibla(&coord), nil
}

// Compass combines a direction with a device heading. A nil or non-finite heading
// means no compass is available; the reading then assumes the device points north.
func (s *QiblaService) Compass(dir qibla.Direction, heading *float64) (CompassReading, error) {
	r := CompassReading{Bearing: dir.Bearing, Point: qibla.CompassPoint(dir.Bearing)}
	if heading == nil || math.IsNaN(*heading) || math.IsInf(*heading, 0) {
		r.Relative = dir.Bearing
		return r, entities.ErrCapabilityUnavailable
	}
	r.Heading = *heading
	r.Relative = qibla.RelativeBearing(dir.Bearing, *heading)
	return r, nil
}
