package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAuthor is used when a post is created without an explicit author.
const DefaultAuthor = "Compliance Hub Team"

// Post represents a blog post entity.
//
// Slug là identity dùng cho lookup - unique, URL-path-safe.
// PublishedAt được set khi published chuyển sang true lần đầu và
// không bao giờ bị clear tự động (unpublish giữ nguyên lịch sử).
type Post struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`

	// Content
	Title      string  `json:"title"`
	Excerpt    *string `json:"excerpt"`
	Content    string  `json:"content"`
	CoverImage *string `json:"cover_image"`
	Author     string  `json:"author"`

	// Visibility
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsVisibleTo reports whether the post may be returned to a caller.
// Anonymous callers only ever see published posts; drafts are
// indistinguishable from posts that never existed.
func (p *Post) IsVisibleTo(authorized bool) bool {
	return authorized || p.Published
}
