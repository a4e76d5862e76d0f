package util

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// Post and comment fields are plain text, so no markup survives.
var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips any HTML from user-submitted text and returns the
// unescaped result.
func SanitizeText(val string) string {
	return html.UnescapeString(textPolicy.Sanitize(val))
}
