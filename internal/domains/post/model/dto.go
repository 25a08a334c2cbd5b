package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugFormat = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ========================================
// REQUEST DTOs
// ========================================

// CreatePostRequest - title is required; slug is derived from the title
// when not supplied. Everything else is optional with entity defaults.
type CreatePostRequest struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  *string    `json:"cover_image"`
	Author      *string    `json:"author"`
	Published   *bool      `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		// Match skips empty strings - a missing slug is derived from the title
		validation.Field(&r.Slug,
			validation.Match(slugFormat).Error("slug must be lowercase alphanumeric with hyphens"),
		),
	)
}

// UpdatePostRequest - partial update. Only non-nil fields are applied;
// an absent field leaves the stored value untouched.
type UpdatePostRequest struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	CoverImage  *string    `json:"cover_image"`
	Author      *string    `json:"author"`
	Published   *bool      `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		// NilOrNotEmpty: absent is fine, explicit empty is not
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Slug,
			validation.NilOrNotEmpty.Error("slug cannot be empty"),
			validation.Match(slugFormat).Error("slug must be lowercase alphanumeric with hyphens"),
		),
	)
}

// IsEmpty reports whether the update contains no fields at all.
func (r UpdatePostRequest) IsEmpty() bool {
	return r.Title == nil && r.Slug == nil && r.Excerpt == nil &&
		r.Content == nil && r.CoverImage == nil && r.Author == nil &&
		r.Published == nil && r.PublishedAt == nil
}

// ========================================
// RESPONSE DTOs
// ========================================

// PostResponse is the full single-post projection.
type PostResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  *string    `json:"cover_image"`
	Author      string     `json:"author"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostListItem is the list projection. Content is omitted - the full
// body is only loaded on single-item fetch.
type PostListItem struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	CoverImage  *string    `json:"cover_image"`
	Author      string     `json:"author"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToPostResponse(p *Post) *PostResponse {
	return &PostResponse{
		ID:          p.ID.String(),
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		CoverImage:  p.CoverImage,
		Author:      p.Author,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToPostListItem(p *Post) PostListItem {
	return PostListItem{
		ID:          p.ID.String(),
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		Author:      p.Author,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// UploadCoverResponse returns the stored variant URLs after an upload.
type UploadCoverResponse struct {
	URL      string            `json:"url"`      // original variant, dùng làm cover_image
	Variants map[string]string `json:"variants"` // all stored sizes
}
