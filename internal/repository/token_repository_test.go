package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepo()

	exp := time.Now().UTC().Add(time.Hour)
	require.NoError(t, repo.StoreRefresh(ctx, 7, "hash-a", exp))

	userID, err := repo.ValidateRefresh(ctx, "hash-a")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), userID)

	_, err = repo.ValidateRefresh(ctx, "unknown")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenRepoExpiry(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepo()

	require.NoError(t, repo.StoreRefresh(ctx, 7, "hash-a", time.Now().UTC().Add(-time.Minute)))

	_, err := repo.ValidateRefresh(ctx, "hash-a")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// the expired entry was evicted, a second check behaves the same
	_, err = repo.ValidateRefresh(ctx, "hash-a")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenRepoRevoke(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepo()
	exp := time.Now().UTC().Add(time.Hour)

	require.NoError(t, repo.StoreRefresh(ctx, 1, "hash-a", exp))
	require.NoError(t, repo.StoreRefresh(ctx, 1, "hash-b", exp))
	require.NoError(t, repo.StoreRefresh(ctx, 2, "hash-c", exp))

	require.NoError(t, repo.RevokeByHash(ctx, "hash-a"))
	_, err := repo.ValidateRefresh(ctx, "hash-a")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// revoking an unknown hash is not an error
	require.NoError(t, repo.RevokeByHash(ctx, "hash-a"))

	require.NoError(t, repo.RevokeAllForUser(ctx, 1))
	_, err = repo.ValidateRefresh(ctx, "hash-b")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// user 2 is untouched
	userID, err := repo.ValidateRefresh(ctx, "hash-c")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), userID)
}
