package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugRepeatHyphen = regexp.MustCompile(`-+`)
	slugValid        = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// GenerateSlug derives a URL-path-safe slug from a title.
// "POPIA Compliance in 2025!" → "popia-compliance-in-2025"
func GenerateSlug(input string) string {
	// Lowercase
	lower := strings.ToLower(input)

	// Replace spaces with hyphens
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Remove special characters. Keep only: a-z, 0-9, hyphens
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")

	// Collapse consecutive hyphens
	normalized := slugRepeatHyphen.ReplaceAllString(cleaned, "-")

	// Trim leading/trailing hyphens
	return strings.Trim(normalized, "-")
}

// IsValidSlug reports whether s is already URL-path-safe: lowercase
// alphanumeric segments joined by single hyphens, no edges.
func IsValidSlug(s string) bool {
	return slugValid.MatchString(s)
}
