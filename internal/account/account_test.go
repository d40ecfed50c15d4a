package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bloghub/internal/account"
	"bloghub/internal/auth"
	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"
	mockstorage "bloghub/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBcryptCost = 4

func newTestService(t *testing.T) (*mockstorage.MockUserStorage, *auth.PasswordHasher, account.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockUserStorage(ctrl)
	hasher := auth.NewPasswordHasher(testBcryptCost)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return st, hasher, account.New(st, hasher, tokens)
}

func TestSignup_StoresHashedCredential(t *testing.T) {
	st, hasher, svc := newTestService(t)

	var stored domain.User
	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user domain.User) (*domain.User, error) {
			stored = user
			user.ID = 1

			return &user, nil
		},
	)

	user, err := svc.Signup(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, domain.UserID(1), user.ID)
	require.Equal(t, "alice@example.com", user.Email)

	// the stored credential is a verifiable digest, never the plaintext
	require.NotEqual(t, "pw", stored.PasswordHash)
	require.True(t, hasher.Verify("pw", stored.PasswordHash))
}

func TestSignup_RequiresAllFields(t *testing.T) {
	_, _, svc := newTestService(t)

	for _, tc := range []struct{ username, email, password string }{
		{"", "a@x.com", "pw"},
		{"a", "", "pw"},
		{"a", "a@x.com", ""},
	} {
		_, err := svc.Signup(context.Background(), tc.username, tc.email, tc.password)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
}

func TestLogin_Succeeds(t *testing.T) {
	st, hasher, svc := newTestService(t)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(&domain.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)

	token, user, err := svc.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, domain.UserID(7), user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	st, hasher, svc := newTestService(t)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(&domain.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "nope")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	st, _, svc := newTestService(t)

	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestLogin_RequiresFields(t *testing.T) {
	_, _, svc := newTestService(t)

	_, _, err := svc.Login(context.Background(), "", "pw")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, _, err = svc.Login(context.Background(), "a@x.com", "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestLogin_StorageFailure(t *testing.T) {
	st, _, svc := newTestService(t)

	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("pg down"))

	_, _, err := svc.Login(context.Background(), "a@x.com", "pw")
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrUnauthorized)
}
