package auth_test

import (
	"testing"
	"time"

	"bloghub/internal/auth"
	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := auth.NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(domain.UserID(42))
	require.NoError(t, err)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(42), userID)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue(domain.UserID(42))
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestTokenManager_RejectsTampered(t *testing.T) {
	m := auth.NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(domain.UserID(42))
	require.NoError(t, err)

	// flip the last character of the signature
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = m.Verify(tampered)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("one-secret", time.Hour)
	verifier := auth.NewTokenManager("other-secret", time.Hour)

	token, err := issuer.Issue(domain.UserID(42))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestTokenManager_RejectsMalformed(t *testing.T) {
	m := auth.NewTokenManager("test-secret", time.Hour)

	_, err := m.Verify("not-a-token")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}
