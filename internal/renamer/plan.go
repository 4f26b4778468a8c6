// Package renamer plans and applies renames of parsed episode files.
package renamer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vmunix/aniren/internal/tmdb"
	"github.com/vmunix/aniren/pkg/fansub"
)

// Item pairs one source path with its parsed filename.
type Item struct {
	Path   string
	Parsed *fansub.ParsedFile
}

// Entry is one planned rename.
type Entry struct {
	Source  string
	Target  string
	Season  int
	Episode int
}

// Skip records a file the plan leaves alone and why.
type Skip struct {
	Path   string
	Reason string
}

// Plan is the outcome of planning one batch.
type Plan struct {
	Entries []Entry
	Skips   []Skip
}

// Options configure plan building.
type Options struct {
	KeepTags      bool
	SeasonFolders bool
}

// Planner maps parsed files onto a series' season layout.
type Planner struct {
	title       string
	seasons     []tmdb.Season
	hasSpecials bool
	noLayout    bool
	opts        Options
}

// New creates a Planner for a series with a known season layout. seasons
// is the metadata provider's list in order; a season numbered 0 marks the
// specials bucket.
func New(title string, seasons []tmdb.Season, opts Options) *Planner {
	p := &Planner{title: SanitizeFilename(title), opts: opts}
	for _, s := range seasons {
		if s.SeasonNumber == 0 {
			p.hasSpecials = true
			continue
		}
		p.seasons = append(p.seasons, s)
	}
	return p
}

// NewWithoutLayout creates a Planner for providers that carry no season
// layout (AniList). Every file keeps the season parsed from its name,
// defaulting to season 1, and its own episode number.
func NewWithoutLayout(title string, opts Options) *Planner {
	return &Planner{title: SanitizeFilename(title), noLayout: true, opts: opts}
}

// Plan maps items onto rename targets. Already formatted files, movies,
// and episodes that fit no season become Skips rather than failures.
func (p *Planner) Plan(items []Item) *Plan {
	plan := &Plan{}
	counter := 1

	for _, it := range items {
		if it.Parsed.AlreadyFormatted {
			plan.Skips = append(plan.Skips, Skip{Path: it.Path, Reason: "already formatted"})
			continue
		}

		season, episode, skip := p.place(it.Parsed, &counter)
		if skip != "" {
			plan.Skips = append(plan.Skips, Skip{Path: it.Path, Reason: skip})
			continue
		}

		dir := filepath.Dir(it.Path)
		if p.opts.SeasonFolders {
			dir = filepath.Join(dir, fmt.Sprintf("Season %d", season))
		}

		plan.Entries = append(plan.Entries, Entry{
			Source:  it.Path,
			Target:  filepath.Join(dir, p.fileName(it.Parsed, season, episode)),
			Season:  season,
			Episode: episode,
		})
	}

	return plan
}

// place picks the (season, episode) slot for one parsed file. The counter
// runs across all specials in the batch so season-0 numbering stays dense.
func (p *Planner) place(parsed *fansub.ParsedFile, counter *int) (season, episode int, skip string) {
	if p.noLayout {
		season = 1
		if parsed.Season != nil {
			season = *parsed.Season
		}
		return season, parsed.Episode, ""
	}

	switch parsed.Type {
	case fansub.ContentNormal:
		if parsed.Season != nil {
			// The filename's own season marker outranks layout math.
			return *parsed.Season, parsed.Episode, ""
		}
		s, e, err := ResolveAbsolute(parsed.Episode, p.seasons)
		if err != nil {
			return 0, 0, fmt.Sprintf("episode %d beyond any season", parsed.Episode)
		}
		return s, e, ""
	case fansub.ContentMovie:
		return 0, 0, "movie, not an episode"
	default:
		episode = parsed.Episode
		if p.hasSpecials {
			episode = *counter
		}
		*counter++
		return 0, episode, ""
	}
}

func (p *Planner) fileName(parsed *fansub.ParsedFile, season, episode int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s S%02dE%02d", p.title, season, episode)
	if p.opts.KeepTags {
		for _, tag := range parsed.Tags {
			b.WriteString("[")
			b.WriteString(tag)
			b.WriteString("]")
		}
	}
	b.WriteString(".")
	b.WriteString(parsed.Ext)
	return b.String()
}
