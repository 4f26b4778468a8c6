// Package fansub parses anime episode filenames published by fansub groups.
package fansub

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ContentType classifies a file as regular episodic content or bonus
// material.
type ContentType int

const (
	ContentNormal ContentType = iota
	ContentOVA
	ContentOAD
	ContentSpecial
	ContentMovie
)

func (t ContentType) String() string {
	switch t {
	case ContentOVA:
		return "ova"
	case ContentOAD:
		return "oad"
	case ContentSpecial:
		return "special"
	case ContentMovie:
		return "movie"
	default:
		return "normal"
	}
}

// Parse failures wrap one of these sentinels together with the filename.
var (
	// ErrNoEpisode means no pattern produced an episode number.
	ErrNoEpisode = errors.New("no episode number found")
	// ErrNoTitle means cleanup stripped the name down to nothing.
	ErrNoTitle = errors.New("no title left after cleanup")
)

// ParsedFile is the structured form of one filename. Episode is always set
// in a returned record; Season is nil when the name carries no season
// marker.
type ParsedFile struct {
	Title            string
	Episode          int
	Season           *int
	Type             ContentType
	Tags             []string
	Ext              string
	AlreadyFormatted bool
}

var (
	tagRe           = regexp.MustCompile(`\[([^\]]+)\]`)
	resolutionTagRe = regexp.MustCompile(`\[(1080|720|480|2160|4K)[^\]]*\]`)
	formattedRe     = regexp.MustCompile(`\s+S\d{2}E\d{2}\s*`)
	sxeTextRe       = regexp.MustCompile(`^[Ss](\d{1,2})[Ee]\d{1,4}$`)
)

// contentKeywords is tested in order and the first hit wins: movie terms
// outrank OAD and OVA, which outrank the generic special markers. A name
// carrying both an OVA and an SP token therefore classifies as OVA.
var contentKeywords = []struct {
	re   *regexp.Regexp
	kind ContentType
}{
	{regexp.MustCompile(`(?i)剧场版|theater|theatrical|movie|gekijouban|gekijōban`), ContentMovie},
	{regexp.MustCompile(`(?i)\bOAD\b`), ContentOAD},
	{regexp.MustCompile(`(?i)\bOVA\b`), ContentOVA},
	{regexp.MustCompile(`(?i)\bSP\b|special|特典|特別|番外|总集篇|总集編`), ContentSpecial},
}

// Parse extracts structured metadata from a single filename (no directory
// part). The returned error wraps ErrNoEpisode or ErrNoTitle when the name
// has no recognizable episode number or nothing survives title cleanup;
// such files cannot be renamed and the caller is expected to report and
// skip them.
func Parse(filename string) (*ParsedFile, error) {
	ext := ""
	stem := filename
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = filename[i+1:]
		stem = filename[:i]
	}

	var tags []string
	for _, m := range tagRe.FindAllStringSubmatch(stem, -1) {
		tags = append(tags, m[1])
	}

	kind := detectContentType(stem)
	formatted := formattedRe.MatchString(stem)

	// Season first: its number span is off limits for episode matching, as
	// are resolution tags like [1080p] whose bare number would otherwise
	// read as an episode.
	var season *int
	var excluded []span
	if sm, ok := seasonChain.find(stem, nil); ok {
		v := sm.value
		season = &v
		excluded = append(excluded, sm.span)
	}
	for _, loc := range resolutionTagRe.FindAllStringIndex(stem, -1) {
		excluded = append(excluded, span{start: loc[0], end: loc[1]})
	}

	em, ok := episodeChain.find(stem, excluded)
	if !ok {
		return nil, fmt.Errorf("parse %q: %w", filename, ErrNoEpisode)
	}

	// An SxEy token names the season explicitly; that beats whatever the
	// season chain picked up elsewhere in the name.
	if sub := sxeTextRe.FindStringSubmatch(em.text); sub != nil {
		v, _ := strconv.Atoi(sub[1])
		season = &v
	}

	title := cleanTitle(deriveTitle(stem, tags, em))
	if title == "" {
		return nil, fmt.Errorf("parse %q: %w", filename, ErrNoTitle)
	}

	return &ParsedFile{
		Title:            title,
		Episode:          em.value,
		Season:           season,
		Type:             kind,
		Tags:             tags,
		Ext:              ext,
		AlreadyFormatted: formatted,
	}, nil
}

func detectContentType(s string) ContentType {
	for _, kw := range contentKeywords {
		if kw.re.MatchString(s) {
			return kw.kind
		}
	}
	return ContentNormal
}

// deriveTitle picks the series name either from the bracket tags, when one
// tag is a bare episode number, or from the stem with the episode token cut
// out.
func deriveTitle(stem string, tags []string, em match) string {
	idx := episodeTagIndex(tags)
	if idx < 0 {
		return stemWithoutEpisode(stem, em)
	}
	if idx == 0 {
		return stem
	}
	if best := longestTitleTag(tags[:idx]); best != "" {
		return best
	}
	return strings.Join(tags[:idx], " ")
}

// episodeTagIndex returns the index of the first tag that is a bare number
// and not a resolution marker, or -1 when there is none.
func episodeTagIndex(tags []string) int {
	for i, tag := range tags {
		if isResolutionTag(tag) {
			continue
		}
		if isAllDigits(tag) {
			return i
		}
	}
	return -1
}

func isResolutionTag(tag string) bool {
	return strings.Contains(tag, "1080") ||
		strings.Contains(tag, "720") ||
		strings.Contains(tag, "480") ||
		strings.Contains(tag, "2160") ||
		strings.Contains(tag, "4K")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// longestTitleTag picks the series title from the tags preceding the episode
// tag. Group and source markers are short; the longest remaining tag is
// almost always the title. Ties keep the earliest tag.
func longestTitleTag(tags []string) string {
	best := ""
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if strings.Contains(lower, "字幕") || strings.Contains(lower, "新番") {
			continue
		}
		if strings.Contains(tag, "1080") || strings.Contains(tag, "720") {
			continue
		}
		if len(tag) <= 2 {
			continue
		}
		if len(tag) > len(best) {
			best = tag
		}
	}
	return best
}

// stemWithoutEpisode removes the matched episode token from the stem. A
// token ending in an open paren drags the parenthesized run after it along,
// which drops total-count annotations like "04(28)".
func stemWithoutEpisode(stem string, em match) string {
	remove := em.text
	if strings.HasSuffix(em.text, "(") {
		if i := strings.Index(stem, em.text); i >= 0 {
			rest := stem[i+len(em.text):]
			if j := strings.Index(rest, ")"); j >= 0 {
				remove = em.text + rest[:j+1]
			}
		}
	}
	return strings.ReplaceAll(stem, remove, " ")
}
