package app

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// DeriveSlug turns a human title into its URL-safe slug: diacritics folded,
// lowercased, punctuation dropped, whitespace collapsed to single hyphens.
// "Plaža Šibenik" -> "plaza-sibenik".
func DeriveSlug(title string) string {
	folded, _, err := transform.String(deaccent, title)
	if err != nil {
		folded = title
	}
	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			// spaces, punctuation and anything non-ASCII left after folding
			// all collapse into at most one separator
			pendingHyphen = true
		}
	}
	return b.String()
}

// IsValidSlug reports whether s already satisfies the slug rules.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	return s == DeriveSlug(s) && !strings.HasPrefix(s, "-") && !strings.HasSuffix(s, "-")
}
