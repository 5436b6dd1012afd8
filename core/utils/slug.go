package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^A-Za-z0-9\-]`)

// Slug turns a hotel display name into a partition key: lower-cased, spaces replaced
// with hyphens, and every character other than an ASCII letter, digit or hyphen removed.
func Slug(name string) string {
	s := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return nonSlugChars.ReplaceAllString(s, "")
}
