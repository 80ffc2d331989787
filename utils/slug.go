package utils

import (
	"strings"
	"unicode"
)

// GenerateSlug derives a URL-safe vendor slug from a store name: lowercase,
// non-alphanumeric runs collapsed into a single hyphen, no leading or trailing
// hyphens. "Sharma & Sons Carpentry" becomes "sharma-sons-carpentry".
func GenerateSlug(storeName string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(storeName) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
