// Package school implements the school directory listings. Listings carry no
// ownership and no business rules beyond field presence at creation.
package school

import (
	"context"
	"fmt"

	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"
	"bloghub/pkg/storage"
)

// Service exposes the directory operations used by the HTTP layer.
type Service interface {
	// Create persists a new listing. All fields are required.
	Create(ctx context.Context, name, websiteLink, content string) (*domain.School, error)
	// List returns all listings, unbounded.
	List(ctx context.Context) ([]domain.School, error)
	// Get returns a listing by id, failing with a not-found signal when absent.
	Get(ctx context.Context, id domain.SchoolID) (*domain.School, error)
}

type service struct {
	storage storage.SchoolStorage
}

func (s *service) Create(ctx context.Context, name, websiteLink, content string) (*domain.School, error) {
	if name == "" || websiteLink == "" || content == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "all fields are required")
	}

	school, err := s.storage.StoreSchool(ctx, domain.School{
		Name:        name,
		WebsiteLink: websiteLink,
		Content:     content,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store school: %w", err)
	}

	return school, nil
}

func (s *service) List(ctx context.Context) ([]domain.School, error) {
	schools, err := s.storage.Schools(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list schools: %w", err)
	}

	return schools, nil
}

func (s *service) Get(ctx context.Context, id domain.SchoolID) (*domain.School, error) {
	school, err := s.storage.SchoolByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch school: %w", err)
	}
	if school == nil {
		return nil, serrors.With(serrors.ErrNotFound, "school not found")
	}

	return school, nil
}

// New creates a school Service backed by the provided storage.
func New(schoolStorage storage.SchoolStorage) Service {
	return &service{storage: schoolStorage}
}
