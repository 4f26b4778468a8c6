package renamer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Apply executes every entry in the plan, creating season directories as
// needed. One failed entry does not stop the rest; failures come back as
// wrapped errors alongside the count of successful renames.
func Apply(entries []Entry, log *slog.Logger) (int, []error) {
	if log == nil {
		log = slog.Default()
	}

	renamed := 0
	var errs []error

	for _, e := range entries {
		dir := filepath.Dir(e.Target)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			errs = append(errs, fmt.Errorf("create directory %s: %w", dir, err))
			continue
		}
		if err := os.Rename(e.Source, e.Target); err != nil {
			errs = append(errs, fmt.Errorf("rename %s: %w", e.Source, err))
			continue
		}
		log.Debug("renamed", "source", e.Source, "target", e.Target)
		renamed++
	}

	return renamed, errs
}
