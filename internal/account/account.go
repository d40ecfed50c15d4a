// Package account implements signup and login: creating user records with
// hashed credentials and issuing bearer tokens on successful verification.
package account

import (
	"context"
	"fmt"

	"bloghub/internal/auth"
	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"
	"bloghub/pkg/storage"
)

// Service exposes the account operations used by the HTTP layer.
type Service interface {
	// Signup creates a new user with a hashed credential and returns the
	// stored record. All three fields are required.
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credential for the given email and returns a bearer
	// token together with the user record. Unknown emails and wrong passwords
	// both fail with the same unauthorized signal.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type service struct {
	storage storage.UserStorage
	hasher  *auth.PasswordHasher
	tokens  *auth.TokenManager
}

func (s *service) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "all fields are required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := s.storage.StoreUser(ctx, domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return user, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, serrors.With(serrors.ErrBadRequest, "email and password are required")
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("could not fetch user: %w", err)
	}
	// an unknown email and a wrong password are indistinguishable to the caller
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("could not issue token: %w", err)
	}

	return token, user, nil
}

// New creates an account Service backed by the given user storage and
// credential primitives.
func New(userStorage storage.UserStorage, hasher *auth.PasswordHasher, tokens *auth.TokenManager) Service {
	return &service{
		storage: userStorage,
		hasher:  hasher,
		tokens:  tokens,
	}
}
