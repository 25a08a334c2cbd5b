// Package adminclient is the HTTP client the admin tooling uses to
// manage blog posts. It threads the shared admin secret through every
// request as the X-Admin-Password header; there are no sessions or
// tokens to refresh.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const adminSecretHeader = "X-Admin-Password"

// ErrUnauthorized is returned when the server rejects the configured
// secret. Callers should prompt for the secret again rather than retry.
var ErrUnauthorized = errors.New("admin secret rejected")

// ErrNotFound is returned for unknown slugs.
var ErrNotFound = errors.New("post not found")

type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

func New(baseURL, secret string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// =====================================================
// DTOs (mirror the API wire shapes)
// =====================================================

type Post struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Excerpt     *string `json:"excerpt,omitempty"`
	Content     string  `json:"content,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
	Author      string  `json:"author"`
	Published   bool    `json:"published"`
	PublishedAt *string `json:"published_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type SavePostRequest struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug,omitempty"`
	Excerpt     *string `json:"excerpt,omitempty"`
	Content     string  `json:"content"`
	CoverImage  *string `json:"cover_image,omitempty"`
	Author      string  `json:"author,omitempty"`
	Published   *bool   `json:"published,omitempty"`
	PublishedAt *string `json:"published_at,omitempty"`
}

type UpdatePostRequest struct {
	Title       *string `json:"title,omitempty"`
	Excerpt     *string `json:"excerpt,omitempty"`
	Content     *string `json:"content,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
	Author      *string `json:"author,omitempty"`
	Published   *bool   `json:"published,omitempty"`
	PublishedAt *string `json:"published_at,omitempty"`
}

// envelope is the standard API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// =====================================================
// OPERATIONS
// =====================================================

// Login verifies the configured secret against the server. The API has
// no login endpoint, and post reads fall back to the public view on a
// bad secret instead of failing, so they cannot tell a good secret
// from a bad one. The lead list is admin-only and 401s on a wrong
// secret.
func (c *Client) Login(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/v1/leads", nil, nil)
}

// ListPosts returns every post the secret can see, drafts included.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches one post with its full content.
func (c *Client) GetPost(ctx context.Context, slug string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts/"+url.PathEscape(slug), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// SavePost creates a new post.
func (c *Client) SavePost(ctx context.Context, req SavePostRequest) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/api/v1/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost applies a partial update to an existing post.
func (c *Client) UpdatePost(ctx context.Context, slug string, req UpdatePostRequest) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPut, "/api/v1/posts/"+url.PathEscape(slug), req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// TogglePublish flips the published flag of a post. Publishing stamps
// published_at server-side; unpublishing leaves it in place.
func (c *Client) TogglePublish(ctx context.Context, slug string) (*Post, error) {
	current, err := c.GetPost(ctx, slug)
	if err != nil {
		return nil, err
	}

	next := !current.Published
	return c.UpdatePost(ctx, slug, UpdatePostRequest{Published: &next})
}

// DeletePost removes a post permanently. Deletion is irreversible, so
// the caller supplies a confirm callback; returning false aborts with
// no request sent.
func (c *Client) DeletePost(ctx context.Context, slug string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	return c.do(ctx, http.MethodDelete, "/api/v1/posts/"+url.PathEscape(slug), nil, nil)
}

// =====================================================
// TRANSPORT
// =====================================================

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set(adminSecretHeader, c.secret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(&env); err != nil {
		return fmt.Errorf("decode response: status=%d: %w", resp.StatusCode, err)
	}

	if !env.Success {
		if env.Error != nil {
			return fmt.Errorf("api error: %s: %s", env.Error.Code, env.Error.Message)
		}
		return fmt.Errorf("api error: status=%d", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}

	return nil
}
