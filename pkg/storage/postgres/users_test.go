package postgres_test

import (
	"context"
	"testing"

	"bloghub/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestStoreUser_AndFetchByEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	strg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	stored, err := strg.StoreUser(ctx, domain.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	})
	require.NoError(t, err)
	require.NotZero(t, stored.ID)
	require.False(t, stored.CreatedAt.IsZero())

	fetched, err := strg.UserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, stored.ID, fetched.ID)
	require.Equal(t, "alice", fetched.Username)
	require.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", fetched.PasswordHash)
}

func TestUserByEmail_Unknown(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	strg, cleanup := setupTestDB(t)
	defer cleanup()

	fetched, err := strg.UserByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestStoreUser_DuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	strg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	_, err := strg.StoreUser(ctx, domain.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "h",
	})
	require.NoError(t, err)

	_, err = strg.StoreUser(ctx, domain.User{
		Username:     "alice2",
		Email:        "alice@example.com",
		PasswordHash: "h",
	})
	require.Error(t, err)
}
