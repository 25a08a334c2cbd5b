package adminclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture serves the standard envelope and records the secrets it saw.
func newFixture(t *testing.T, secret string) (*httptest.Server, *[]string) {
	t.Helper()
	var seen []string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/leads", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(adminSecretHeader))
		if r.Header.Get(adminSecretHeader) != secret {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"leads": []interface{}{}, "total": 0},
		})
	})
	mux.HandleFunc("/api/v1/posts", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(adminSecretHeader))

		switch r.Method {
		case http.MethodGet:
			// Reads never 401: a wrong secret just gets the public view
			posts := []Post{{Slug: "live-post", Title: "Live", Published: true}}
			if r.Header.Get(adminSecretHeader) == secret {
				posts = append(posts, Post{Slug: "draft-post", Title: "Draft", Published: false})
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    posts,
			})
		case http.MethodPost:
			if r.Header.Get(adminSecretHeader) != secret {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			var req SavePostRequest
			json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    Post{Slug: "new-post", Title: req.Title},
			})
		}
	})
	mux.HandleFunc("/api/v1/posts/", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(adminSecretHeader))
		if r.Method != http.MethodGet && r.Header.Get(adminSecretHeader) != secret {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    Post{Slug: "draft-post", Title: "Draft", Published: false},
			})
		case http.MethodPut:
			var req UpdatePostRequest
			json.NewDecoder(r.Body).Decode(&req)
			published := req.Published != nil && *req.Published
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    Post{Slug: "draft-post", Title: "Draft", Published: published},
			})
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]string{"message": "Post deleted successfully"},
			})
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &seen
}

func TestLogin(t *testing.T) {
	server, _ := newFixture(t, "s3cret")

	assert.NoError(t, New(server.URL, "s3cret").Login(context.Background()))
	assert.ErrorIs(t, New(server.URL, "wrong").Login(context.Background()), ErrUnauthorized)
}

func TestLogin_RejectsSecretPostReadsWouldAccept(t *testing.T) {
	server, _ := newFixture(t, "s3cret")
	client := New(server.URL, "wrong")

	// The post list still answers 200 for a bad secret, public view only
	posts, err := client.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].Published)

	// Login must still catch the bad secret
	assert.ErrorIs(t, client.Login(context.Background()), ErrUnauthorized)
}

func TestSecretThreadedThroughEveryRequest(t *testing.T) {
	server, seen := newFixture(t, "s3cret")
	client := New(server.URL, "s3cret")
	ctx := context.Background()

	_, err := client.ListPosts(ctx)
	require.NoError(t, err)
	_, err = client.GetPost(ctx, "draft-post")
	require.NoError(t, err)
	_, err = client.SavePost(ctx, SavePostRequest{Title: "New"})
	require.NoError(t, err)

	require.NotEmpty(t, *seen)
	for _, got := range *seen {
		assert.Equal(t, "s3cret", got)
	}
}

func TestListPostsIncludesDrafts(t *testing.T) {
	server, _ := newFixture(t, "s3cret")
	client := New(server.URL, "s3cret")

	posts, err := client.ListPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.False(t, posts[1].Published)
}

func TestTogglePublish(t *testing.T) {
	server, _ := newFixture(t, "s3cret")
	client := New(server.URL, "s3cret")

	// Fixture serves the post as a draft; the toggle must flip it on
	post, err := client.TogglePublish(context.Background(), "draft-post")

	require.NoError(t, err)
	assert.True(t, post.Published)
}

func TestDeletePost_ConfirmGate(t *testing.T) {
	server, seen := newFixture(t, "s3cret")
	client := New(server.URL, "s3cret")

	// Declined confirm: no request leaves the client
	err := client.DeletePost(context.Background(), "draft-post", func() bool { return false })
	require.NoError(t, err)
	assert.Empty(t, *seen)

	// Accepted confirm: the delete goes through
	err = client.DeletePost(context.Background(), "draft-post", func() bool { return true })
	require.NoError(t, err)
	assert.Len(t, *seen, 1)
}
