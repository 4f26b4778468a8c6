package fansub

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// CleanQuery normalizes a title for metadata search and comparison. Fansub
// names mix full-width and half-width forms freely ("！", "１２"), so widths
// are folded first, then accents stripped and punctuation collapsed to
// spaces. CJK text passes through unchanged apart from the width fold.
func CleanQuery(title string) string {
	s := width.Fold.String(title)
	s = strings.ToLower(s)
	s = removeAccents(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}
