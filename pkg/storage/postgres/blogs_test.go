package postgres_test

import (
	"context"
	"testing"

	"bloghub/pkg/domain"
	"bloghub/pkg/storage"
	"bloghub/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func storeTestUser(t *testing.T, strg *postgres.PgSQL, email string) domain.UserID {
	t.Helper()

	user, err := strg.StoreUser(context.Background(), domain.User{
		Username:     "author",
		Email:        email,
		PasswordHash: "h",
	})
	require.NoError(t, err)

	return user.ID
}

func TestBlogLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	strg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := storeTestUser(t, strg, "owner@example.com")

	stored, err := strg.StoreBlog(ctx, domain.Blog{
		Title:   "T",
		Content: "C",
		UserID:  ownerID,
	})
	require.NoError(t, err)
	require.NotZero(t, stored.ID)
	require.Equal(t, ownerID, stored.UserID)
	require.True(t, stored.UpdatedAt.IsZero())

	fetched, err := strg.BlogByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, "T", fetched.Title)

	all, err := strg.Blogs(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestBlogByID_Missing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	strg, cleanup := setupTestDB(t)
	defer cleanup()

	fetched, err := strg.BlogByID(context.Background(), 12345)
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestUpdateBlogByOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	strg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := storeTestUser(t, strg, "owner@example.com")
	otherID := storeTestUser(t, strg, "other@example.com")

	stored, err := strg.StoreBlog(ctx, domain.Blog{Title: "T", Content: "C", UserID: ownerID})
	require.NoError(t, err)

	// partial update keeps the omitted field
	updated, err := strg.UpdateBlogByOwner(ctx, ownerID, stored.ID, storage.BlogUpdates{
		Title: strPtr("T2"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "T2", updated.Title)
	require.Equal(t, "C", updated.Content)
	require.False(t, updated.UpdatedAt.IsZero())

	// another user cannot touch the row, and cannot tell it exists
	denied, err := strg.UpdateBlogByOwner(ctx, otherID, stored.ID, storage.BlogUpdates{
		Title: strPtr("hijack"),
	})
	require.NoError(t, err)
	require.Nil(t, denied)

	// a missing row yields the same signal
	missing, err := strg.UpdateBlogByOwner(ctx, ownerID, 12345, storage.BlogUpdates{
		Title: strPtr("x"),
	})
	require.NoError(t, err)
	require.Nil(t, missing)

	// the denied attempt did not change anything
	fetched, err := strg.BlogByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, "T2", fetched.Title)
}

func TestDeleteBlogByOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	strg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := storeTestUser(t, strg, "owner@example.com")
	otherID := storeTestUser(t, strg, "other@example.com")

	stored, err := strg.StoreBlog(ctx, domain.Blog{Title: "T", Content: "C", UserID: ownerID})
	require.NoError(t, err)

	deleted, err := strg.DeleteBlogByOwner(ctx, otherID, stored.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = strg.DeleteBlogByOwner(ctx, ownerID, stored.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// a second delete finds nothing
	deleted, err = strg.DeleteBlogByOwner(ctx, ownerID, stored.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
