package fansub

import "sort"

// span is a half-open byte range [start, end) within the parsed string.
type span struct {
	start int
	end   int
}

// overlaps reports whether two spans share at least one byte. Spans that
// only touch at an endpoint do not overlap.
func (s span) overlaps(o span) bool {
	return s.start < o.end && s.end > o.start
}

func (s span) overlapsAny(spans []span) bool {
	for _, o := range spans {
		if s.overlaps(o) {
			return true
		}
	}
	return false
}

// match is one successful pattern hit. text is the full matched token;
// span covers only the number group inside it.
type match struct {
	value int
	text  string
	span  span
}

// matcher is a single pattern variant. find returns the leftmost hit in s,
// or ok=false when the pattern is absent. The variants are data rows in
// matchers.go; there is no behavior per variant beyond the closure.
type matcher struct {
	name     string
	priority int
	find     func(s string) (match, bool)
}

// chain tries matchers in ascending priority order. Matchers hold no state
// beyond their compiled patterns, so one chain serves concurrent callers.
type chain struct {
	matchers []matcher
}

// newChain copies ms and stable-sorts by priority, so matchers with equal
// priority keep their registration order.
func newChain(ms []matcher) *chain {
	c := &chain{matchers: make([]matcher, len(ms))}
	copy(c.matchers, ms)
	sort.SliceStable(c.matchers, func(i, j int) bool {
		return c.matchers[i].priority < c.matchers[j].priority
	})
	return c
}

// find returns the first hit whose number span overlaps none of the excluded
// spans. Each matcher contributes at most its leftmost hit; when that hit is
// excluded the matcher is skipped entirely rather than retried at a later
// offset.
func (c *chain) find(s string, excluded []span) (match, bool) {
	for i := range c.matchers {
		m, ok := c.matchers[i].find(s)
		if !ok {
			continue
		}
		if m.span.overlapsAny(excluded) {
			continue
		}
		return m, true
	}
	return match{}, false
}
