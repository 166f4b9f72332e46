package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// cleanText NFC-normalizes extracted text and strips the control characters
// PDF extractors tend to leave behind. Newlines and tabs survive.
func cleanText(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
