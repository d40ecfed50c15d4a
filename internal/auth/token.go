package auth

import (
	"strconv"
	"time"

	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies HS256 JWTs that encode the subject user ID
// with issued-at and expiry claims. Tokens are stateless; there is no
// revocation, and changing the signing secret invalidates all outstanding
// tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager constructs a TokenManager with the process-wide signing
// secret and the TTL applied to every issued token.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given subject expiring after the
// configured TTL.
func (m *TokenManager) Issue(userID domain.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not sign token")
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and returns the subject user
// ID. Malformed, tampered and expired tokens all fail with an unauthorized
// kind; callers need not distinguish the cases.
func (m *TokenManager) Verify(token string) (domain.UserID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if !parsed.Valid {
		return 0, serrors.With(serrors.ErrUnauthorized, "invalid token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return domain.UserID(userID), nil
}
