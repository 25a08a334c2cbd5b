package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"compliance-backend/internal/domains/post/model"
	"compliance-backend/internal/domains/post/repository"
	"compliance-backend/internal/infrastructure/storage"
	"compliance-backend/internal/shared/utils"
)

// CoverStorage is the slice of object storage the post service needs.
type CoverStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type postService struct {
	repo      repository.PostRepository
	storage   CoverStorage
	processor *storage.ImageProcessor
	now       func() time.Time
}

func NewPostService(repo repository.PostRepository, coverStorage CoverStorage) ServiceInterface {
	return &postService{
		repo:      repo,
		storage:   coverStorage,
		processor: storage.NewImageProcessor(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// =====================================================
// READ PATH
// =====================================================

func (s *postService) ListPosts(ctx context.Context, authorized bool) ([]model.PostListItem, error) {
	posts, err := s.repo.List(ctx, authorized)
	if err != nil {
		return nil, err
	}

	items := make([]model.PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, model.ToPostListItem(p))
	}
	return items, nil
}

func (s *postService) GetPost(ctx context.Context, slug string, authorized bool) (*model.PostResponse, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Draft + anonymous caller: report not-found, không leak là post tồn tại
	if !post.IsVisibleTo(authorized) {
		return nil, model.ErrPostNotFound
	}

	return model.ToPostResponse(post), nil
}

// =====================================================
// WRITE PATH
// =====================================================

func (s *postService) CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}
	if slug == "" {
		return nil, model.NewValidationError(fmt.Errorf("slug is required (add a title or slug)"))
	}

	now := s.now()
	published := req.Published != nil && *req.Published

	post := &model.Post{
		ID:         uuid.New(),
		Slug:       slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Author:     model.DefaultAuthor,
		Published:  published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Author != nil && *req.Author != "" {
		post.Author = *req.Author
	}
	if published {
		// First transition to published: stamp it, preferring an
		// explicit caller-supplied timestamp.
		if req.PublishedAt != nil {
			post.PublishedAt = req.PublishedAt
		} else {
			post.PublishedAt = &now
		}
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return model.ToPostResponse(post), nil
}

func (s *postService) UpdatePost(ctx context.Context, slug string, req model.UpdatePostRequest) (*model.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	now := s.now()

	// Field-level partial update: chỉ các field non-nil được đưa vào SET
	changes := map[string]interface{}{
		"updated_at": now, // always refreshed, kể cả update rỗng
	}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Slug != nil {
		changes["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		changes["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		changes["content"] = *req.Content
	}
	if req.CoverImage != nil {
		changes["cover_image"] = *req.CoverImage
	}
	if req.Author != nil {
		changes["author"] = *req.Author
	}
	if req.Published != nil {
		changes["published"] = *req.Published

		// Publishing stamps published_at: the supplied value, else now.
		// Unpublishing leaves published_at alone - the history of having
		// been published is never erased.
		if *req.Published {
			if req.PublishedAt != nil {
				changes["published_at"] = *req.PublishedAt
			} else {
				changes["published_at"] = now
			}
		}
	}

	return toResponse(s.repo.Update(ctx, slug, changes))
}

func (s *postService) DeletePost(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}

// =====================================================
// COVER UPLOAD
// =====================================================

func (s *postService) UploadCover(ctx context.Context, data []byte) (*model.UploadCoverResponse, error) {
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, model.NewValidationError(err)
	}

	variants, err := s.processor.ProcessCover(data)
	if err != nil {
		return nil, model.NewValidationError(err)
	}

	coverID := uuid.New()
	urls := make(map[string]string, len(variants))
	for name, body := range variants {
		key := fmt.Sprintf("covers/%s/%s.jpg", coverID, name)
		url, err := s.storage.Upload(ctx, key, body, "image/jpeg")
		if err != nil {
			return nil, fmt.Errorf("failed to store cover variant %s: %w", name, err)
		}
		urls[name] = url
	}

	return &model.UploadCoverResponse{
		URL:      urls["original"],
		Variants: urls,
	}, nil
}

func toResponse(post *model.Post, err error) (*model.PostResponse, error) {
	if err != nil {
		return nil, err
	}
	return model.ToPostResponse(post), nil
}
