package domain

import "time"

// SchoolID uniquely identifies a school listing.
type SchoolID int64

// School represents a directory listing. Listings carry no ownership; anyone
// may create and read them.
type School struct {
	// ID is the unique identifier of the listing.
	ID SchoolID `json:"id"`
	// Name is the school's display name.
	Name string `json:"school_name"`
	// WebsiteLink is the school's website URL.
	WebsiteLink string `json:"school_website_link"`
	// Content is the free-form description of the school.
	Content string `json:"content"`
	// CreatedAt is the time the listing was created.
	CreatedAt time.Time `json:"created_at"`
}
