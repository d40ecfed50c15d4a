// Package storage defines the persistence interfaces the application relies
// on. It abstracts the backing store so different backends (e.g. PostgreSQL)
// can provide concrete implementations, and so services can be tested against
// mocks.
//
// Every operation is a single statement at the store. In particular the
// owner-conditioned blog mutations combine the existence and ownership checks
// into one conditional statement, so no check-then-act race exists and no
// application-level locking is needed.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"bloghub/pkg/domain"
)

// BlogUpdates describes the optional fields of a partial blog update. Only
// non-nil fields are written; omitted fields keep their prior value.
type BlogUpdates struct {
	// Title, when provided, replaces the post title.
	Title *string
	// Content, when provided, replaces the post body.
	Content *string
}

// UserStorage persists and looks up user accounts.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row including the
	// generated identifier. The email column is unique; violations surface as
	// errors from the underlying store.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail fetches a user by their unique email. Returns nil when no
	// such user exists.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// BlogStorage persists blog posts and enforces owner-conditioned mutation.
type BlogStorage interface {
	// StoreBlog inserts a new post and returns the stored row including the
	// generated identifier.
	StoreBlog(ctx context.Context, blog domain.Blog) (*domain.Blog, error)
	// Blogs returns all posts. Unbounded by design; pagination can be added
	// behind this interface without touching callers.
	Blogs(ctx context.Context) ([]domain.Blog, error)
	// BlogByID fetches a post by its identifier. Returns nil when not found.
	BlogByID(ctx context.Context, id domain.BlogID) (*domain.Blog, error)
	// UpdateBlogByOwner applies a partial update to the post, conditioned on
	// both the identifier and the owner in a single statement. Returns the
	// updated row, or nil when no post with that id is owned by ownerID.
	UpdateBlogByOwner(ctx context.Context,
		ownerID domain.UserID,
		id domain.BlogID,
		updates BlogUpdates) (*domain.Blog, error)
	// DeleteBlogByOwner removes the post, conditioned on both the identifier
	// and the owner in a single statement. Reports whether a row was deleted.
	DeleteBlogByOwner(ctx context.Context, ownerID domain.UserID, id domain.BlogID) (bool, error)
}

// SchoolStorage persists school directory listings.
type SchoolStorage interface {
	// StoreSchool inserts a new listing and returns the stored row.
	StoreSchool(ctx context.Context, school domain.School) (*domain.School, error)
	// Schools returns all listings, unbounded.
	Schools(ctx context.Context) ([]domain.School, error)
	// SchoolByID fetches a listing by its identifier. Returns nil when not found.
	SchoolByID(ctx context.Context, id domain.SchoolID) (*domain.School, error)
}

// AllStorage is the composite of every domain-specific storage capability.
type AllStorage interface {
	UserStorage
	BlogStorage
	SchoolStorage
}

// Storage is a storage handle with lifecycle management.
type Storage interface {
	AllStorage

	// Close releases any resources held by the implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error
}
