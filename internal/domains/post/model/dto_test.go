package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreatePostRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     CreatePostRequest
		wantErr bool
	}{
		{"title only", CreatePostRequest{Title: "Hello"}, false},
		{"title with valid slug", CreatePostRequest{Title: "Hello", Slug: "hello-world"}, false},
		{"missing title", CreatePostRequest{Content: "body"}, true},
		{"uppercase slug", CreatePostRequest{Title: "Hello", Slug: "Hello-World"}, true},
		{"slug with spaces", CreatePostRequest{Title: "Hello", Slug: "hello world"}, true},
		{"slug with leading hyphen", CreatePostRequest{Title: "Hello", Slug: "-hello"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePostRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     UpdatePostRequest
		wantErr bool
	}{
		{"empty update is valid", UpdatePostRequest{}, false},
		{"new title", UpdatePostRequest{Title: strPtr("New")}, false},
		{"explicit empty title rejected", UpdatePostRequest{Title: strPtr("")}, true},
		{"explicit empty slug rejected", UpdatePostRequest{Slug: strPtr("")}, true},
		{"bad slug rejected", UpdatePostRequest{Slug: strPtr("Not A Slug")}, true},
		{"valid slug", UpdatePostRequest{Slug: strPtr("new-slug")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePostRequest_IsEmpty(t *testing.T) {
	assert.True(t, UpdatePostRequest{}.IsEmpty())
	assert.False(t, UpdatePostRequest{Title: strPtr("x")}.IsEmpty())
}

func TestPost_IsVisibleTo(t *testing.T) {
	draft := Post{Published: false}
	live := Post{Published: true}

	assert.False(t, draft.IsVisibleTo(false))
	assert.True(t, draft.IsVisibleTo(true))
	assert.True(t, live.IsVisibleTo(false))
	assert.True(t, live.IsVisibleTo(true))
}
