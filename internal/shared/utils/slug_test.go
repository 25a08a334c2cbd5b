package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"mixed case", "POPI Act Compliance Guide", "popi-act-compliance-guide"},
		{"punctuation stripped", "What's new in 2026?", "whats-new-in-2026"},
		{"multiple spaces collapse", "too    many   spaces", "too-many-spaces"},
		{"leading and trailing junk", "  --Trimmed--  ", "trimmed"},
		{"unicode dropped", "café & résumé", "caf-rsum"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.title))
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"a", "hello-world", "post-123", "2026-tax-guide"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "UPPER", "with space", "under_score"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), "expected %q to be invalid", s)
	}
}
