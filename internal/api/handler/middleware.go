package handler

import (
	"context"
	"net/http"
	"strings"

	"bloghub/pkg/controller"
	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"
)

const (
	// UserIDKey is the context key under which the authenticated user ID is stored.
	UserIDKey controller.CtxKey = "UserID"

	bearerPrefix = "Bearer "
)

// Authenticate gates a route behind a bearer token. A missing header, a
// malformed header and an invalid or expired token all fail the same way.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing or invalid token"))

			return
		}

		userID, err := h.deps.Tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			writeError(w, r, err)

			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user ID stored by Authenticate.
// It is only meaningful inside gated routes.
func UserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}
