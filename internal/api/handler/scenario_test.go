package handler_test

import (
	"context"
	"net/http"
	"testing"

	"bloghub/pkg/domain"
	"bloghub/pkg/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestOwnershipScenario walks the full authenticated flow: two accounts sign
// up and log in, the first creates a post, and the second's attempt to mutate
// it is rejected without revealing whether the post exists.
func TestOwnershipScenario(t *testing.T) {
	env := newTestEnv(t)

	// stateful storage stubs shared across the flow
	usersByEmail := map[string]*domain.User{}
	var nextUserID int64
	env.users.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user domain.User) (*domain.User, error) {
			nextUserID++
			user.ID = domain.UserID(nextUserID)
			usersByEmail[user.Email] = &user

			return &user, nil
		},
	).Times(2)
	env.users.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email string) (*domain.User, error) {
			return usersByEmail[email], nil
		},
	).Times(2)

	blogsByID := map[domain.BlogID]*domain.Blog{}
	var nextBlogID int64
	env.blogs.EXPECT().StoreBlog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b domain.Blog) (*domain.Blog, error) {
			nextBlogID++
			b.ID = domain.BlogID(nextBlogID)
			blogsByID[b.ID] = &b

			return &b, nil
		},
	)
	env.blogs.EXPECT().UpdateBlogByOwner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context,
			ownerID domain.UserID,
			id domain.BlogID,
			updates storage.BlogUpdates) (*domain.Blog, error) {
			b, ok := blogsByID[id]
			if !ok || b.UserID != ownerID {
				return nil, nil
			}
			if updates.Title != nil {
				b.Title = *updates.Title
			}
			if updates.Content != nil {
				b.Content = *updates.Content
			}

			return b, nil
		},
	).Times(2)

	signup := func(username, email string) {
		rec := env.do(t, http.MethodPost, "/signup", "", map[string]string{
			"username": username,
			"email":    email,
			"password": "pw",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	login := func(email string) string {
		rec := env.do(t, http.MethodPost, "/login", "", map[string]string{
			"email":    email,
			"password": "pw",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		return decodeBody(t, rec)["token"].(string)
	}

	signup("alice", "alice@example.com")
	signup("bob", "bob@example.com")
	aliceToken := login("alice@example.com")
	bobToken := login("bob@example.com")

	// alice creates a post; ownership comes from her token
	rec := env.do(t, http.MethodPost, "/blogs", aliceToken, map[string]string{
		"title":   "Alice's post",
		"content": "hers alone",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)["blog"].(map[string]any)
	require.EqualValues(t, 1, created["user_id"])

	// bob cannot mutate it
	rec = env.do(t, http.MethodPatch, "/blogs/1", bobToken, map[string]string{
		"title": "bob was here",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	// alice still can
	rec = env.do(t, http.MethodPatch, "/blogs/1", aliceToken, map[string]string{
		"title": "updated by alice",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "updated by alice", decodeBody(t, rec)["title"])
}
