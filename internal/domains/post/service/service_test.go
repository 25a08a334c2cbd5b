package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-backend/internal/domains/post/model"
	"compliance-backend/internal/infrastructure/storage"
)

// fakePostRepo captures calls so tests can assert on exactly what the
// service asked the repository to do.
type fakePostRepo struct {
	posts map[string]*model.Post

	createdPost *model.Post
	updatedSlug string
	lastChanges map[string]interface{}
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*model.Post)}
}

func (f *fakePostRepo) Create(ctx context.Context, post *model.Post) error {
	if _, exists := f.posts[post.Slug]; exists {
		return model.NewSlugTakenError(post.Slug)
	}
	f.createdPost = post
	f.posts[post.Slug] = post
	return nil
}

func (f *fakePostRepo) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	post, ok := f.posts[slug]
	if !ok {
		return nil, model.NewPostNotFoundError()
	}
	return post, nil
}

func (f *fakePostRepo) List(ctx context.Context, includeDrafts bool) ([]*model.Post, error) {
	var out []*model.Post
	for _, p := range f.posts {
		if p.Published || includeDrafts {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(ctx context.Context, slug string, changes map[string]interface{}) (*model.Post, error) {
	post, ok := f.posts[slug]
	if !ok {
		return nil, model.NewPostNotFoundError()
	}
	f.updatedSlug = slug
	f.lastChanges = changes
	return post, nil
}

func (f *fakePostRepo) Delete(ctx context.Context, slug string) error {
	if _, ok := f.posts[slug]; !ok {
		return model.NewPostNotFoundError()
	}
	delete(f.posts, slug)
	return nil
}

type fakeStorage struct{}

func (fakeStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return "http://localhost:9000/test/" + key, nil
}

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestService(repo *fakePostRepo) *postService {
	return &postService{
		repo:      repo,
		storage:   fakeStorage{},
		processor: storage.NewImageProcessor(),
		now:       func() time.Time { return fixedNow },
	}
}

func seedPost(repo *fakePostRepo, slug string, published bool) *model.Post {
	post := &model.Post{
		ID:        uuid.New(),
		Slug:      slug,
		Title:     "Seeded",
		Content:   "body",
		Author:    model.DefaultAuthor,
		Published: published,
		CreatedAt: fixedNow.Add(-time.Hour),
		UpdatedAt: fixedNow.Add(-time.Hour),
	}
	repo.posts[slug] = post
	return post
}

// =====================================================
// DRAFT VISIBILITY
// =====================================================

func TestGetPost_DraftHiddenFromAnonymous(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "draft-post", false)
	svc := newTestService(repo)

	_, err := svc.GetPost(context.Background(), "draft-post", false)

	// Same error as a nonexistent slug: existence must not leak
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPostNotFound)

	_, missingErr := svc.GetPost(context.Background(), "no-such-post", false)
	assert.ErrorIs(t, missingErr, model.ErrPostNotFound)
}

func TestGetPost_DraftVisibleToAdmin(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "draft-post", false)
	svc := newTestService(repo)

	post, err := svc.GetPost(context.Background(), "draft-post", true)

	require.NoError(t, err)
	assert.Equal(t, "draft-post", post.Slug)
	assert.False(t, post.Published)
}

func TestGetPost_PublishedVisibleToAnyone(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "live-post", true)
	svc := newTestService(repo)

	post, err := svc.GetPost(context.Background(), "live-post", false)

	require.NoError(t, err)
	assert.Equal(t, "live-post", post.Slug)
}

func TestListPosts_AnonymousSeesPublishedOnly(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "live-post", true)
	seedPost(repo, "draft-post", false)
	svc := newTestService(repo)

	public, err := svc.ListPosts(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "live-post", public[0].Slug)

	admin, err := svc.ListPosts(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

// =====================================================
// CREATE
// =====================================================

func TestCreatePost_SlugDerivedFromTitle(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)

	post, err := svc.CreatePost(context.Background(), model.CreatePostRequest{
		Title:   "POPI Act Compliance Guide",
		Content: "body",
	})

	require.NoError(t, err)
	assert.Equal(t, "popi-act-compliance-guide", post.Slug)
	assert.Equal(t, model.DefaultAuthor, post.Author)
	assert.False(t, post.Published)
	assert.Nil(t, post.PublishedAt)
}

func TestCreatePost_ExplicitSlugWins(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)

	post, err := svc.CreatePost(context.Background(), model.CreatePostRequest{
		Title:   "Some Long Title",
		Slug:    "short",
		Content: "body",
	})

	require.NoError(t, err)
	assert.Equal(t, "short", post.Slug)
}

func TestCreatePost_PublishedStampsPublishedAt(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)
	published := true

	post, err := svc.CreatePost(context.Background(), model.CreatePostRequest{
		Title:     "Launch Post",
		Content:   "body",
		Published: &published,
	})

	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, fixedNow, *post.PublishedAt)
}

func TestCreatePost_ExplicitPublishedAtPreserved(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)
	published := true
	backdated := fixedNow.Add(-48 * time.Hour)

	post, err := svc.CreatePost(context.Background(), model.CreatePostRequest{
		Title:       "Backdated Post",
		Content:     "body",
		Published:   &published,
		PublishedAt: &backdated,
	})

	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, backdated, *post.PublishedAt)
}

func TestCreatePost_MissingTitleRejected(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)

	_, err := svc.CreatePost(context.Background(), model.CreatePostRequest{Content: "body"})

	require.Error(t, err)
	var postErr *model.PostError
	require.ErrorAs(t, err, &postErr)
	assert.Equal(t, model.ErrCodeValidation, postErr.Code)
	assert.Nil(t, repo.createdPost)
}

func TestCreatePost_DuplicateSlug(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "taken", true)
	svc := newTestService(repo)

	_, err := svc.CreatePost(context.Background(), model.CreatePostRequest{
		Title: "Taken",
		Slug:  "taken",
	})

	assert.ErrorIs(t, err, model.ErrSlugTaken)
}

// =====================================================
// UPDATE
// =====================================================

func TestUpdatePost_OnlyProvidedFieldsApplied(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "the-post", true)
	svc := newTestService(repo)
	title := "New Title"

	_, err := svc.UpdatePost(context.Background(), "the-post", model.UpdatePostRequest{
		Title: &title,
	})

	require.NoError(t, err)
	assert.Equal(t, "the-post", repo.updatedSlug)
	assert.Equal(t, map[string]interface{}{
		"updated_at": fixedNow,
		"title":      "New Title",
	}, repo.lastChanges)
}

func TestUpdatePost_PublishStampsPublishedAt(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "the-post", false)
	svc := newTestService(repo)
	published := true

	_, err := svc.UpdatePost(context.Background(), "the-post", model.UpdatePostRequest{
		Published: &published,
	})

	require.NoError(t, err)
	assert.Equal(t, true, repo.lastChanges["published"])
	assert.Equal(t, fixedNow, repo.lastChanges["published_at"])
}

func TestUpdatePost_RepublishWithExplicitTimestamp(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "the-post", true)
	svc := newTestService(repo)
	published := true
	explicit := fixedNow.Add(-24 * time.Hour)

	_, err := svc.UpdatePost(context.Background(), "the-post", model.UpdatePostRequest{
		Published:   &published,
		PublishedAt: &explicit,
	})

	require.NoError(t, err)
	assert.Equal(t, explicit, repo.lastChanges["published_at"])
}

func TestUpdatePost_UnpublishKeepsPublishedAt(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "the-post", true)
	svc := newTestService(repo)
	published := false

	_, err := svc.UpdatePost(context.Background(), "the-post", model.UpdatePostRequest{
		Published: &published,
	})

	require.NoError(t, err)
	assert.Equal(t, false, repo.lastChanges["published"])
	// published_at must not appear in the SET clause at all
	_, touched := repo.lastChanges["published_at"]
	assert.False(t, touched)
}

func TestUpdatePost_EmptyUpdateStillTouchesUpdatedAt(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "the-post", true)
	svc := newTestService(repo)

	_, err := svc.UpdatePost(context.Background(), "the-post", model.UpdatePostRequest{})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"updated_at": fixedNow}, repo.lastChanges)
}

func TestUpdatePost_NotFound(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)

	_, err := svc.UpdatePost(context.Background(), "nope", model.UpdatePostRequest{})

	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

// =====================================================
// DELETE
// =====================================================

func TestDeletePost(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(repo, "the-post", true)
	svc := newTestService(repo)

	require.NoError(t, svc.DeletePost(context.Background(), "the-post"))
	assert.ErrorIs(t, svc.DeletePost(context.Background(), "the-post"), model.ErrPostNotFound)
}
