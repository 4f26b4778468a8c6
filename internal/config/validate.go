package config

import (
	"fmt"
	"regexp"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// languagePattern matches TMDB locale codes like "zh-CN" or "ja".
var languagePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Cache.TTLDays < 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl_days: must not be negative, got %d", c.Cache.TTLDays))
	}

	if c.TMDB.Language != "" && !languagePattern.MatchString(c.TMDB.Language) {
		errs = append(errs, fmt.Sprintf("tmdb.language: must be a locale code like zh-CN or en-US, got %q", c.TMDB.Language))
	}

	return errs
}
