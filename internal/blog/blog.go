// Package blog implements the blog post operations, enforcing that only the
// owner of a post may mutate it.
package blog

import (
	"context"
	"fmt"

	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"
	"bloghub/pkg/storage"
)

// Updates describes a partial update to a post. A nil field keeps the prior
// value; at least one field must be set.
type Updates struct {
	Title   *string
	Content *string
}

// Service exposes the blog operations used by the HTTP layer.
type Service interface {
	// Create persists a new post owned by ownerID. Title and content must be
	// non-empty.
	Create(ctx context.Context, ownerID domain.UserID, title, content string) (*domain.Blog, error)
	// List returns all posts, unbounded.
	List(ctx context.Context) ([]domain.Blog, error)
	// Get returns a post by id, failing with a not-found signal when absent.
	Get(ctx context.Context, id domain.BlogID) (*domain.Blog, error)
	// Update applies a partial update to the post identified by id, but only
	// when it is owned by ownerID. A post that is missing and a post owned by
	// someone else produce the same forbidden signal.
	Update(ctx context.Context, ownerID domain.UserID, id domain.BlogID, updates Updates) (*domain.Blog, error)
	// Delete removes the post identified by id under the same ownership
	// precondition as Update. Deleting an already-deleted id yields the
	// forbidden signal, not a distinct one.
	Delete(ctx context.Context, ownerID domain.UserID, id domain.BlogID) error
}

type service struct {
	storage storage.BlogStorage
}

func (s *service) Create(ctx context.Context, ownerID domain.UserID, title, content string) (*domain.Blog, error) {
	if title == "" || content == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title and content are required")
	}

	blog, err := s.storage.StoreBlog(ctx, domain.Blog{
		Title:   title,
		Content: content,
		UserID:  ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store blog: %w", err)
	}

	return blog, nil
}

func (s *service) List(ctx context.Context) ([]domain.Blog, error) {
	blogs, err := s.storage.Blogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list blogs: %w", err)
	}

	return blogs, nil
}

func (s *service) Get(ctx context.Context, id domain.BlogID) (*domain.Blog, error) {
	blog, err := s.storage.BlogByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch blog: %w", err)
	}
	if blog == nil {
		return nil, serrors.With(serrors.ErrNotFound, "blog not found")
	}

	return blog, nil
}

func (s *service) Update(ctx context.Context,
	ownerID domain.UserID,
	id domain.BlogID,
	updates Updates) (*domain.Blog, error) {
	if updates.Title == nil && updates.Content == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "title or content required")
	}

	// the storage statement is conditioned on id AND owner, so the existence
	// and ownership checks happen atomically with the mutation
	blog, err := s.storage.UpdateBlogByOwner(ctx, ownerID, id, storage.BlogUpdates{
		Title:   updates.Title,
		Content: updates.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update blog: %w", err)
	}
	if blog == nil {
		return nil, serrors.With(serrors.ErrForbidden, "not authorized to update this blog")
	}

	return blog, nil
}

func (s *service) Delete(ctx context.Context, ownerID domain.UserID, id domain.BlogID) error {
	deleted, err := s.storage.DeleteBlogByOwner(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("could not delete blog: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrForbidden, "not authorized to delete this blog")
	}

	return nil
}

// New creates a blog Service backed by the provided storage.
func New(blogStorage storage.BlogStorage) Service {
	return &service{storage: blogStorage}
}
