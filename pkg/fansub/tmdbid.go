package fansub

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Library naming conventions that pin a directory to a TMDB entry:
// Plex-style "{tmdb-12345}" and Jellyfin-style "[tmdbid-12345]".
var tmdbIDRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\{tmdb-(\d+)\}`),
	regexp.MustCompile(`(?i)\[tmdbid-(\d+)\]`),
}

// ExtractTMDBID pulls a TMDB series id out of a library path, letting the
// rename flow skip the search step entirely. The deepest path component
// carrying a marker wins. ok is false when no component has one.
func ExtractTMDBID(path string) (id int, ok bool) {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		for _, re := range tmdbIDRes {
			m := re.FindStringSubmatch(parts[i])
			if m == nil {
				continue
			}
			id, err := strconv.Atoi(m[1])
			if err != nil || id == 0 {
				continue
			}
			return id, true
		}
	}
	return 0, false
}
