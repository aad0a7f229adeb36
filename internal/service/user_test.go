package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_EnsureUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	created, err := svc.EnsureUser(ctx, 1, 101)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureUser(ctx, 1, 101)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestUserService_EnsureUserReactivates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, 101)
	require.NoError(t, err)
	require.NoError(t, repo.Deactivate(ctx, 1))
	require.False(t, repo.users[1].IsActive)

	created, err := svc.EnsureUser(ctx, 1, 101)
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, repo.users[1].IsActive)
}

func TestUserService_EnsureUserError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.err = errBoom
	svc := NewUserService(repo)

	_, err := svc.EnsureUser(context.Background(), 1, 101)
	assert.ErrorIs(t, err, errBoom)
}
