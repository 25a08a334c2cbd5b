package service

import (
	"context"

	"compliance-backend/internal/domains/post/model"
)

// =====================================================
// POST SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// ListPosts lists posts, newest first. authorized=false hides drafts.
	ListPosts(ctx context.Context, authorized bool) ([]model.PostListItem, error)

	// GetPost gets a post by slug. For unauthorized callers a draft is
	// reported as not found, same as a slug that never existed.
	GetPost(ctx context.Context, slug string, authorized bool) (*model.PostResponse, error)

	// CreatePost creates a new post (authorized callers only - enforced
	// at the route level).
	CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.PostResponse, error)

	// UpdatePost partially updates the post with the given slug.
	UpdatePost(ctx context.Context, slug string, req model.UpdatePostRequest) (*model.PostResponse, error)

	// DeletePost hard-deletes by slug.
	DeletePost(ctx context.Context, slug string) error

	// UploadCover stores a cover image and returns its public URLs.
	UploadCover(ctx context.Context, data []byte) (*model.UploadCoverResponse, error)
}
