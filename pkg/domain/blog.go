package domain

import "time"

// BlogID uniquely identifies a blog post.
type BlogID int64

// Blog represents a post authored by a user. Only the owning user may mutate
// or remove a post; reads are open to everyone.
type Blog struct {
	// ID is the unique identifier of the post.
	ID BlogID `json:"id"`
	// Title is the post headline.
	Title string `json:"title"`
	// Content is the post body.
	Content string `json:"content"`
	// UserID identifies the owning author.
	UserID UserID `json:"user_id"`
	// CreatedAt is the time the post was created.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the time of the last mutation. It is zero until the post is
	// first updated.
	UpdatedAt time.Time `json:"updated_at"`
}
