package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`[\s-]+`)
)

// Slugify turns a display name into a URL-safe slug: lowercase, non-word
// characters stripped, runs of spaces and hyphens collapsed to a single
// hyphen, no leading or trailing hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
