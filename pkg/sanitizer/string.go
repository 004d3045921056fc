package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeUnicode converts s to Unicode Normalization Form C, so a letter
// typed as base + combining mark ("e" + U+0301) becomes its single
// precomposed code point ("é").
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}
