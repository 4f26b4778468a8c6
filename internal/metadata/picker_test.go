package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/aniren/internal/tmdb"
)

func TestRankShows_ExactMatchFirst(t *testing.T) {
	shows := []tmdb.TVShow{
		{ID: 1, Name: "孤独的美食家"},
		{ID: 2, Name: "孤独搖滾！"},
	}

	ranked := RankShows("孤独搖滾！", shows)
	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].Show.ID)
	assert.Equal(t, 1.0, ranked[0].Score)
	assert.Less(t, ranked[1].Score, 1.0)
}

func TestRankShows_MatchesOriginalName(t *testing.T) {
	shows := []tmdb.TVShow{
		{ID: 1, Name: "鬼灭之刃", OriginalName: "鬼滅の刃"},
	}

	// The localized name misses but the original name is exact.
	ranked := RankShows("鬼滅の刃", shows)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1.0, ranked[0].Score)
}

func TestRankShows_NormalizesBothSides(t *testing.T) {
	shows := []tmdb.TVShow{
		{ID: 1, Name: "One-Punch Man"},
	}

	// Full-width input folds to the same normalized form.
	ranked := RankShows("Ｏｎｅ－Ｐｕｎｃｈ Ｍａｎ", shows)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1.0, ranked[0].Score)
}

func TestRankShows_Empty(t *testing.T) {
	ranked := RankShows("anything", nil)
	assert.Empty(t, ranked)
}

func TestRankShows_KeepsAPIOrderForTies(t *testing.T) {
	shows := []tmdb.TVShow{
		{ID: 1, Name: "Frieren"},
		{ID: 2, Name: "Frieren"},
	}

	ranked := RankShows("Frieren", shows)
	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].Show.ID)
	assert.Equal(t, 2, ranked[1].Show.ID)
}

func TestAutoPick_Unambiguous(t *testing.T) {
	ranked := []Candidate{
		{Show: tmdb.TVShow{ID: 1, Name: "Best"}, Score: 0.95},
		{Show: tmdb.TVShow{ID: 2, Name: "Other"}, Score: 0.50},
	}

	show, ok := AutoPick(ranked)
	assert.True(t, ok)
	assert.Equal(t, 1, show.ID)
}

func TestAutoPick_BelowThreshold(t *testing.T) {
	ranked := []Candidate{
		{Show: tmdb.TVShow{ID: 1}, Score: 0.80},
	}

	_, ok := AutoPick(ranked)
	assert.False(t, ok, "score below threshold should not auto-pick")
}

func TestAutoPick_CloseRunnerUp(t *testing.T) {
	ranked := []Candidate{
		{Show: tmdb.TVShow{ID: 1}, Score: 0.90},
		{Show: tmdb.TVShow{ID: 2}, Score: 0.88},
	}

	_, ok := AutoPick(ranked)
	assert.False(t, ok, "ambiguous ranking should fall back to the user")
}

func TestAutoPick_SingleStrongCandidate(t *testing.T) {
	ranked := []Candidate{
		{Show: tmdb.TVShow{ID: 1, Name: "Only"}, Score: 0.90},
	}

	show, ok := AutoPick(ranked)
	assert.True(t, ok)
	assert.Equal(t, 1, show.ID)
}

func TestAutoPick_Empty(t *testing.T) {
	_, ok := AutoPick(nil)
	assert.False(t, ok)
}

func TestRankShows_ExactMatchAutoPicks(t *testing.T) {
	shows := []tmdb.TVShow{
		{ID: 1, Name: "葬送的芙莉莲", OriginalName: "葬送のフリーレン"},
		{ID: 2, Name: "别的番剧"},
	}

	show, ok := AutoPick(RankShows("葬送的芙莉莲", shows))
	require.True(t, ok)
	assert.Equal(t, 1, show.ID)
}
