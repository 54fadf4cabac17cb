package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug turns a title into a URL-safe slug: lower-cased, runs of
// non-alphanumerics collapsed to a single hyphen, leading/trailing hyphens
// stripped. A purely symbolic title yields an empty slug.
func GenerateSlug(s string) string {
	s = strings.ToLower(s)
	s = slugPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
