package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/kailas-cloud/partsearch/internal/domain/search/intent"
)

// maxCodeQueryLength is the longest query still treated as a mixed letter/digit code.
const maxCodeQueryLength = 15

// Normalize lowercases text, strips diacritics, replaces everything outside
// [a-z0-9 -_.] with spaces and collapses whitespace. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)

	// transform.Chain keeps internal state, so a fresh chain is built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSpace := false
	for _, r := range stripped {
		if !isQueryRune(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isQueryRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '.':
		return true
	default:
		return false
	}
}

// ClassifyIntent labels a normalized query. Rules are evaluated in order:
// mixed letters+digits (short, at most two tokens) and digits-only are codes,
// a single digit-free token is a category, anything else a product description.
func ClassifyIntent(query string) intent.Intent {
	var hasDigit, hasLetter bool
	for _, r := range query {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	tokens := len(strings.Fields(query))

	switch {
	case hasDigit && hasLetter && utf8.RuneCountInString(query) <= maxCodeQueryLength && tokens <= 2:
		return intent.Code
	case hasDigit && !hasLetter:
		return intent.Code
	case !hasDigit && tokens == 1:
		return intent.Category
	default:
		return intent.Product
	}
}
