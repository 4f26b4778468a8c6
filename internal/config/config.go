// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultTMDBKey is the shared fallback API key so the tool works without
// any configuration. Set tmdb.api_key or TMDB_API_KEY to use your own.
const DefaultTMDBKey = "454dec4903d35bb318ab2ad9e578c615"

// Config is the root configuration structure.
type Config struct {
	TMDB    TMDBConfig    `toml:"tmdb"`
	AniList AniListConfig `toml:"anilist"`
	Cache   CacheConfig   `toml:"cache"`
	Rename  RenameConfig  `toml:"rename"`
	Log     LogConfig     `toml:"log"`
}

type TMDBConfig struct {
	APIKey   string `toml:"api_key"`
	Language string `toml:"language"`
}

type AniListConfig struct {
	Enabled bool `toml:"enabled"`
}

type CacheConfig struct {
	Path    string `toml:"path"`
	TTLDays int    `toml:"ttl_days"`
}

type RenameConfig struct {
	KeepTags      bool `toml:"keep_tags"`
	SeasonFolders bool `toml:"season_folders"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// DetailsTTL returns the cache lifetime for series details.
func (c *Config) DetailsTTL() time.Duration {
	return time.Duration(c.Cache.TTLDays) * 24 * time.Hour
}

// Default returns a configuration with all defaults applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file. Unresolved environment
// variables and validation failures are reported together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}

	return cfg, nil
}

// LoadWithoutValidation reads the config, skipping validation and the
// missing variable check. For commands that only need a best-effort config.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.TMDB.APIKey == "" {
		c.TMDB.APIKey = DefaultTMDBKey
	}
	if c.TMDB.Language == "" {
		c.TMDB.Language = "zh-CN"
	}
	if c.Cache.Path == "" {
		c.Cache.Path = defaultCachePath()
	}
	if c.Cache.TTLDays == 0 {
		c.Cache.TTLDays = 7
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "./metadata.db"
	}
	return filepath.Join(dir, "aniren", "metadata.db")
}

// envVarPattern matches ${VAR_NAME} references.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR} references with environment values.
// Supports shell-style ${VAR:-default} fallbacks and ${VAR:?message}
// required markers. Comment lines pass through untouched so a commented-out
// example never counts as a missing variable. Returns the substituted
// content plus the names of variables that could not be resolved.
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	expand := func(match string) string {
		expr := match[2 : len(match)-1] // Strip ${ and }

		name, op, hasOp := strings.Cut(expr, ":")
		if !hasOp {
			if value, ok := os.LookupEnv(name); ok {
				return value
			}
			missing = append(missing, name)
			return match // Leave unchanged if not found
		}

		// For :- and :? an empty value counts as unset, like the shell.
		value := os.Getenv(name)
		switch {
		case strings.HasPrefix(op, "-"):
			if value != "" {
				return value
			}
			return op[1:]
		case strings.HasPrefix(op, "?"):
			if value != "" {
				return value
			}
			missing = append(missing, fmt.Sprintf("%s: %s", name, op[1:]))
			return match
		default:
			// Not an operator; the colon is part of the variable name.
			if v, ok := os.LookupEnv(expr); ok {
				return v
			}
			missing = append(missing, expr)
			return match
		}
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, expand)
	}
	return strings.Join(lines, "\n"), missing
}
