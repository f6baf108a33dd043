// Package textnorm reduces raw text to the token alphabet the relevance
// scorer understands: Arabic-script letters separated by single spaces.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize deletes every rune that is not an Arabic-script letter and
// collapses whitespace runs into single spaces, with no leading or
// trailing space. Deleted runes are not replaced, so previously separate
// words can merge and the result can be empty. The function is total and
// deterministic.
//
// Normalization is a preprocessing gate for scoring only. Keyword search
// must match the literal imported text and never goes through it.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) && unicode.Is(unicode.Arabic, r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
