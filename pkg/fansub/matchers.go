package fansub

import (
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Season patterns, in priority order. The roman numeral form sits well
// behind the explicit shapes because bare capital letters are easy false
// positives.
var seasonMatchers = []matcher{
	regexMatcher("s-digit", 1, regexp.MustCompile(`[Ss](\d{1,2})(?:\s|[\]\[]|$)`), 1),
	regexMatcher("season-word", 2, regexp.MustCompile(`[Ss]eason\s*(\d{1,2})`), 1),
	regexMatcher("cjk-season", 3, regexp.MustCompile(`第\s*(\d{1,2})\s*季`), 1),
	{name: "roman", priority: 10, find: findRomanSeason},
}

// Episode patterns, in priority order. Structured shapes come first; the
// bare delimiter-prefixed number is the catch-all and must stay last so it
// only wins when nothing more specific matched.
var episodeMatchers = []matcher{
	regexMatcher("sxe", 1, regexp.MustCompile(`[Ss](\d{1,2})[Ee](\d{1,4})`), 2),
	regexMatcher("cjk-episode", 2, regexp.MustCompile(`第\s*(\d{1,4})\s*(?:集|话|話)`), 1),
	regexMatcher("ep", 3, regexp.MustCompile(`[Ee][Pp]\s*(\d{1,4})`), 1),
	regexMatcher("e-digit", 4, regexp.MustCompile(`[Ee](\d{1,4})(?:\D|$)`), 1),
	regexMatcher("bracket", 5, regexp.MustCompile(`\[(\d{1,4})\]`), 1),
	regexMatcher("s-underscore", 6, regexp.MustCompile(`_[Ss](\d{1,4})`), 1),
	regexMatcher("delimiter", 20, regexp.MustCompile(`[\s\-_\.：:]+(\d{1,4})(?:\D|$)`), 1),
}

var (
	seasonChain  = newChain(seasonMatchers)
	episodeChain = newChain(episodeMatchers)
)

// regexMatcher builds a matcher whose value comes from the given capture
// group. The match text covers the whole pattern hit; the span covers the
// number group only.
func regexMatcher(name string, priority int, re *regexp.Regexp, group int) matcher {
	return matcher{
		name:     name,
		priority: priority,
		find: func(s string) (match, bool) {
			loc := re.FindStringSubmatchIndex(s)
			if loc == nil {
				return match{}, false
			}
			gs, ge := loc[2*group], loc[2*group+1]
			if gs < 0 {
				return match{}, false
			}
			value, err := strconv.Atoi(s[gs:ge])
			if err != nil {
				return match{}, false
			}
			return match{
				value: value,
				text:  s[loc[0]:loc[1]],
				span:  span{start: gs, end: ge},
			}, true
		},
	}
}

var romanSeasonRe = regexp.MustCompile(`\b([IVX]+)\b`)

var romanValues = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5,
	"VI": 6, "VII": 7, "VIII": 8, "IX": 9, "X": 10,
}

// findRomanSeason matches a standalone roman numeral I through X. The token
// must be preceded by start-of-string, whitespace, or a bracket, which keeps
// capitals inside ordinary words from reading as seasons.
func findRomanSeason(s string) (match, bool) {
	loc := romanSeasonRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return match{}, false
	}
	gs, ge := loc[2], loc[3]
	value, ok := romanValues[s[gs:ge]]
	if !ok {
		return match{}, false
	}
	if gs > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:gs])
		if !unicode.IsSpace(r) && r != '[' && r != ']' {
			return match{}, false
		}
	}
	return match{
		value: value,
		text:  s[gs:ge],
		span:  span{start: gs, end: ge},
	}, true
}
