package metadata

import (
	"sort"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/aniren/internal/tmdb"
	"github.com/vmunix/aniren/pkg/fansub"
)

// Auto-pick thresholds over Jaro-Winkler similarity.
const (
	autoPickScore  = 0.85
	autoPickMargin = 0.05
)

// Candidate is a search result scored against a parsed title.
type Candidate struct {
	Show  tmdb.TVShow
	Score float64 // Jaro-Winkler similarity (0.0-1.0)
}

// RankShows orders search results by similarity between the parsed title and
// each show's name. Uses Jaro-Winkler similarity which favors prefix matches
// (good for media titles). Both sides are normalized before comparison, and
// a show is scored on the better of its localized and original names.
func RankShows(title string, shows []tmdb.TVShow) []Candidate {
	normalized := fansub.CleanQuery(title)

	ranked := make([]Candidate, 0, len(shows))
	for _, show := range shows {
		score := titleScore(normalized, show.Name)
		if s := titleScore(normalized, show.OriginalName); s > score {
			score = s
		}
		ranked = append(ranked, Candidate{Show: show, Score: score})
	}

	// Stable sort keeps the API's popularity order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// AutoPick returns the top candidate when the ranking is unambiguous: the
// best score reaches the threshold and the runner-up trails by a clear
// margin. Returns false when the caller should ask the user instead.
func AutoPick(ranked []Candidate) (tmdb.TVShow, bool) {
	if len(ranked) == 0 {
		return tmdb.TVShow{}, false
	}
	best := ranked[0]
	if best.Score < autoPickScore {
		return tmdb.TVShow{}, false
	}
	if len(ranked) > 1 && best.Score-ranked[1].Score < autoPickMargin {
		return tmdb.TVShow{}, false
	}
	return best.Show, true
}

// titleScore compares a normalized parsed title against one candidate name.
// An exact normalized match short-circuits at 1.0.
func titleScore(normalized, candidate string) float64 {
	normalizedCandidate := fansub.CleanQuery(candidate)
	if normalizedCandidate == "" {
		return 0
	}
	if normalizedCandidate == normalized {
		return 1.0
	}
	return float64(edlib.JaroWinklerSimilarity(normalized, normalizedCandidate))
}
