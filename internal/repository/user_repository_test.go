package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtix/seat-booking/internal/utils"
)

// bcrypt's minimum cost keeps the hashing fast in tests.
const testBcryptCost = 4

func TestUserRepoCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	id, err := repo.Create(ctx, "alice@example.com", "Alice", "s3cret", "CUSTOMER", testBcryptCost)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	u, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "CUSTOMER", u.Role)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "s3cret"))
	assert.False(t, utils.VerifyPassword(u.PasswordHash, "wrong"))

	actor := u.Actor()
	assert.Equal(t, id, actor.ID)
	assert.Equal(t, "Alice", actor.Name)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	_, err := repo.Create(ctx, "alice@example.com", "Alice", "pw", "CUSTOMER", testBcryptCost)
	require.NoError(t, err)

	// same address with different case and padding
	_, err = repo.Create(ctx, "  Alice@Example.COM ", "Other", "pw", "CUSTOMER", testBcryptCost)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserRepoLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	id, err := repo.Create(ctx, "bob@example.com", "Bob", "pw", "CUSTOMER", testBcryptCost)
	require.NoError(t, err)

	u, err := repo.GetByEmail(ctx, "BOB@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
