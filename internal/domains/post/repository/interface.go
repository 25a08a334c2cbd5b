package repository

import (
	"context"

	"compliance-backend/internal/domains/post/model"
)

// =====================================================
// POST REPOSITORY INTERFACE
// =====================================================

type PostRepository interface {
	// Create inserts a new post. Returns model.ErrSlugTaken on a
	// duplicate slug.
	Create(ctx context.Context, post *model.Post) error

	// GetBySlug returns a post regardless of published status.
	// Visibility filtering is the service's job.
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)

	// List returns posts ordered by created_at descending.
	// includeDrafts=false restricts to published posts only.
	List(ctx context.Context, includeDrafts bool) ([]*model.Post, error)

	// Update applies only the given column changes to the post with the
	// given slug and returns the updated row. Field-level last-writer-wins:
	// absent columns are never touched. Returns model.ErrPostNotFound when
	// no row matches.
	Update(ctx context.Context, slug string, changes map[string]interface{}) (*model.Post, error)

	// Delete hard-deletes by slug. Returns model.ErrPostNotFound when no
	// row matched, so the handler can report the store-level no-op.
	Delete(ctx context.Context, slug string) error
}
