package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/storage"
)

func TestTasbihService_Increment(t *testing.T) {
	repo := newFakeTasbihRepo()
	svc := NewTasbihService(storage.NewTasbihStorage(), repo, zap.NewNop())
	ctx := context.Background()
	haptic := &fakeHaptic{}

	for i := 0; i < 3; i++ {
		_, err := svc.Increment(ctx, 1, haptic)
		require.NoError(t, err)
	}

	state, err := svc.State(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.TasbihState{Count: 3, Total: 3}, state)
	assert.Equal(t, 3, haptic.pulses)
}

func TestTasbihService_ResetKeepsTotal(t *testing.T) {
	repo := newFakeTasbihRepo()
	svc := NewTasbihService(storage.NewTasbihStorage(), repo, zap.NewNop())
	ctx := context.Background()

	_, _ = svc.Increment(ctx, 1, nil)
	_, _ = svc.Increment(ctx, 1, nil)
	svc.ResetSession(1)

	state, err := svc.Increment(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.TasbihState{Count: 1, Total: 3}, state)
}

func TestTasbihService_HapticFailureIgnored(t *testing.T) {
	svc := NewTasbihService(storage.NewTasbihStorage(), newFakeTasbihRepo(), zap.NewNop())

	state, err := svc.Increment(context.Background(), 1, &fakeHaptic{err: errBoom})
	require.NoError(t, err)
	assert.Equal(t, 1, state.Count)
}

func TestTasbihService_PersistFailure(t *testing.T) {
	repo := newFakeTasbihRepo()
	repo.err = errBoom
	svc := NewTasbihService(storage.NewTasbihStorage(), repo, zap.NewNop())

	state, err := svc.Increment(context.Background(), 1, nil)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, state.Count)
}

func TestTasbihService_CountFollowsStoredTotal(t *testing.T) {
	repo := newFakeTasbihRepo()
	svc := NewTasbihService(storage.NewTasbihStorage(), repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Increment(ctx, 1, nil)
	require.NoError(t, err)

	repo.err = errBoom
	_, err = svc.Increment(ctx, 1, nil)
	require.Error(t, err)

	repo.err = nil
	state, err := svc.Increment(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.TasbihState{Count: 2, Total: 2}, state)
}
