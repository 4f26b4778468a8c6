package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that no config file exists in any search location.
// The CLI treats this as "run on defaults", not as a failure.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./aniren.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "aniren", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. ANIREN_CONFIG environment variable
//  2. ./aniren.toml (current directory)
//  3. $XDG_CONFIG_HOME/aniren/config.toml
//  4. /etc/aniren/config.toml
func Discover() (string, error) {
	// 1. Check ANIREN_CONFIG env var
	if envPath := os.Getenv("ANIREN_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("ANIREN_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	// Build search paths
	paths := []string{
		"./aniren.toml",
		DefaultPath(),
		"/etc/aniren/config.toml",
	}

	// 2-4. Check each path
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
