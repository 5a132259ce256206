package tools

import (
	"regexp"
	"strings"
)

var (
	// \s is ASCII-only in RE2, \p{Zs} adds no-break and other unicode spaces
	slugStrip      = regexp.MustCompile(`[^a-z0-9\s\p{Zs}-]`)
	slugWhitespace = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// MakeSlug converts an item name into the URL slug used by the auction site
func MakeSlug(itemName string) string {
	slug := strings.ToLower(itemName)
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	return slug
}
