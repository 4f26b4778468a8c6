// Package scanner finds video files eligible for renaming.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// videoExtensions are the container formats fansub groups actually ship.
var videoExtensions = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".avi":  true,
	".flv":  true,
	".rmvb": true,
	".mov":  true,
}

// IsVideoFile reports whether path has a known video container extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// Scanner lists video files under a root path.
type Scanner struct {
	recursive bool
}

// New creates a Scanner. With recursive set it descends into
// subdirectories; otherwise only the root's direct children are
// considered.
func New(recursive bool) *Scanner {
	return &Scanner{recursive: recursive}
}

// Scan returns the video files under root in sorted path order. A root
// that is itself a video file yields just that file. Files with "sample"
// in the name are skipped.
func (s *Scanner) Scan(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		if IsVideoFile(root) && !isSample(info.Name()) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var videos []string
	if s.recursive {
		videos, err = walkVideos(root)
	} else {
		videos, err = listVideos(root)
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(videos)
	return videos, nil
}

func walkVideos(root string) ([]string, error) {
	var videos []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are skipped rather than aborting the walk.
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !IsVideoFile(path) || isSample(info.Name()) {
			return nil
		}
		videos = append(videos, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return videos, nil
}

func listVideos(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !IsVideoFile(entry.Name()) || isSample(entry.Name()) {
			continue
		}
		videos = append(videos, filepath.Join(root, entry.Name()))
	}

	return videos, nil
}

func isSample(name string) bool {
	return strings.Contains(strings.ToLower(name), "sample")
}
