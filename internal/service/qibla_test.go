package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/domain/qibla"
)

func TestQiblaService_Direction(t *testing.T) {
	settings := newFakeSettingsRepo()
	svc := NewQiblaService(settings)
	ctx := context.Background()
	require.NoError(t, settings.Create(ctx, 1))

	dir, err := svc.Direction(ctx, 1)
	assert.ErrorIs(t, err, entities.ErrCapabilityUnavailable)
	assert.True(t, dir.Approximate)
	assert.Equal(t, qibla.DefaultBearing, dir.Bearing)

	require.NoError(t, settings.UpdateLocation(ctx, 1, entities.Dhaka, "Dhaka"))

	dir, err = svc.Direction(ctx, 1)
	require.NoError(t, err)
	assert.False(t, dir.Approximate)
	assert.InDelta(t, 277.5, dir.Bearing, 0.5)
}

func TestQiblaService_DirectionUnknownUser(t *testing.T) {
	svc := NewQiblaService(newFakeSettingsRepo())

	_, err := svc.Direction(context.Background(), 42)
	assert.Error(t, err)
}

func TestQiblaService_DirectionFrom(t *testing.T) {
	svc := NewQiblaService(newFakeSettingsRepo())

	_, err := svc.DirectionFrom(entities.GeoCoordinate{Longitude: 200})
	assert.ErrorIs(t, err, entities.ErrInvalidCoordinate)

	dir, err := svc.DirectionFrom(entities.GeoCoordinate{Latitude: 51.5074, Longitude: -0.1278})
	require.NoError(t, err)
	assert.InDelta(t, 119.0, dir.Bearing, 0.5)
}

func TestQiblaService_Compass(t *testing.T) {
	svc := NewQiblaService(newFakeSettingsRepo())
	dir := qibla.Direction{Bearing: 277.5}

	heading := 300.0
	r, err := svc.Compass(dir, &heading)
	require.NoError(t, err)
	assert.InDelta(t, 337.5, r.Relative, 1e-9)
	assert.Equal(t, "W", r.Point)

	r, err = svc.Compass(dir, nil)
	assert.ErrorIs(t, err, entities.ErrCapabilityUnavailable)
	assert.Equal(t, 277.5, r.Relative)

	nan := math.NaN()
	r, err = svc.Compass(dir, &nan)
	assert.ErrorIs(t, err, entities.ErrCapabilityUnavailable)
	assert.Equal(t, 277.5, r.Relative)
	assert.Zero(t, r.Heading)
}
