package fansub

import (
	"regexp"
	"strings"
)

// Season shapes swept out of titles. Season extraction only records the
// value, it never mutates the stem, so these tokens are usually still
// present verbatim in a derived title.
var seasonCleanupRes = []*regexp.Regexp{
	regexp.MustCompile(`[Ss]eason\s*\d{1,2}`),
	regexp.MustCompile(`第\s*\d{1,2}\s*季`),
	regexp.MustCompile(`\b[IVX]+\b`),
	regexp.MustCompile(`[Ss]\d{1,2}(?:\s|[\]\[]|$)`),
	regexp.MustCompile(`_[Ss]\d{1,4}`),
}

var (
	parenRe = regexp.MustCompile(`\([^)]*\)`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// cleanTitle strips release decoration from a derived title: bracket tags,
// content-type keywords, season tokens, and parenthesized runs. Keywords are
// replaced by a space rather than deleted so unrelated words do not fuse
// together. Anything after a colon is treated as a subtitle and dropped.
func cleanTitle(name string) string {
	s := tagRe.ReplaceAllString(name, "")

	for _, kw := range contentKeywords {
		s = kw.re.ReplaceAllString(s, " ")
	}
	for _, re := range seasonCleanupRes {
		s = re.ReplaceAllString(s, " ")
	}
	s = parenRe.ReplaceAllString(s, " ")

	if i := strings.Index(s, "："); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[:i]
	}

	s = strings.TrimSpace(s)
	s = strings.Trim(s, "-_.")
	s = strings.TrimSpace(s)
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
