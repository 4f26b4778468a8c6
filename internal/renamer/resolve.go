package renamer

import (
	"errors"
	"fmt"

	"github.com/vmunix/aniren/internal/tmdb"
)

// ErrUnresolved means an absolute episode number exceeds every known season.
var ErrUnresolved = errors.New("episode beyond any season")

// ResolveAbsolute maps an absolute episode number onto a (season, episode)
// pair by walking the season list in order. Fansub groups often number
// straight through a series, so episode 28 of a 26+18 split belongs to
// season 2. Each season consumes its episode count until the number fits;
// boundary episodes land in the earlier season. Season 0 entries never
// absorb episodes.
func ResolveAbsolute(episode int, seasons []tmdb.Season) (int, int, error) {
	accumulated := 0
	for _, s := range seasons {
		if s.SeasonNumber == 0 {
			continue
		}
		if episode <= accumulated+s.EpisodeCount {
			return s.SeasonNumber, episode - accumulated, nil
		}
		accumulated += s.EpisodeCount
	}
	return 0, 0, fmt.Errorf("resolve episode %d: %w", episode, ErrUnresolved)
}
