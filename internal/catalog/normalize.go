package catalog

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes free text into the join key shared by catalog
// display names and grid fields: lowercase, tokens stripped of
// non-alphanumeric runes, rejoined with single spaces. Tokens that strip to
// nothing are dropped, which keeps the function idempotent.
func Normalize(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		var b strings.Builder
		for _, r := range f {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
		}
	}
	return strings.Join(tokens, " ")
}
