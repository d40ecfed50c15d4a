package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"bloghub/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrNotFound, "blog %d not found", 42)

	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.NotErrorIs(t, err, serrors.ErrForbidden)
	require.Equal(t, "blog 42 not found", err.Error())
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrUnavailable, cause, "provider call failed")

	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "provider call failed: connection refused", err.Error())
}

func TestWrap_SurvivesFurtherWrapping(t *testing.T) {
	err := serrors.With(serrors.ErrForbidden, "not the owner")
	wrapped := fmt.Errorf("could not update blog: %w", err)

	require.ErrorIs(t, wrapped, serrors.ErrForbidden)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(serrors.With(serrors.ErrBadRequest, "missing title")))
	require.Equal(t, serrors.ErrUnauthorized,
		serrors.KindOf(fmt.Errorf("gate: %w", serrors.With(serrors.ErrUnauthorized, "expired"))))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))
}
