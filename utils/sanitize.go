package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.StrictPolicy()

// SanitizeName strips all markup from user-supplied display names.
func SanitizeName(input string) string {
	return strings.TrimSpace(sanitizer.Sanitize(input))
}
