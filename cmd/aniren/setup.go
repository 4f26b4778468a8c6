package main

import (
	"bufio"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/vmunix/aniren/internal/config"
	"github.com/vmunix/aniren/internal/migrations"
)

// loadConfig resolves the effective configuration. An explicit --config
// path must load; without one a discovered file is used when present,
// and built-in defaults apply when none exists.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	path, err := config.Discover()
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// openCacheDB opens the metadata cache database, creating the directory
// and schema on first use.
func openCacheDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}

	return db, nil
}

// stdin is swapped by tests that drive the interactive prompts.
var stdin io.Reader = os.Stdin

// prompt prints a label and reads one trimmed input line.
func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// confirm asks a yes/no question; empty input counts as yes.
func confirm(reader *bufio.Reader, label string) bool {
	switch strings.ToLower(prompt(reader, label)) {
	case "", "y", "yes":
		return true
	}
	return false
}
