package config

import (
	"strings"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := Default()
	errs := cfg.Validate()
	if len(errs) != 0 {
		t.Errorf("expected default config to validate, got %v", errs)
	}
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"", true},
		{"loud", false},
		{"INFO", false},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Log.Level = tt.level
		errs := cfg.Validate()
		if tt.valid && len(errs) != 0 {
			t.Errorf("level %q: expected valid, got %v", tt.level, errs)
		}
		if !tt.valid && len(errs) == 0 {
			t.Errorf("level %q: expected validation error", tt.level)
		}
	}
}

func TestValidate_NegativeTTL(t *testing.T) {
	cfg := Default()
	cfg.Cache.TTLDays = -1

	errs := cfg.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if !strings.Contains(errs[0], "cache.ttl_days") {
		t.Errorf("expected cache.ttl_days in error, got %q", errs[0])
	}
}

func TestValidate_Language(t *testing.T) {
	tests := []struct {
		language string
		valid    bool
	}{
		{"zh-CN", true},
		{"en-US", true},
		{"ja", true},
		{"", true},
		{"Chinese", false},
		{"ZH-cn", false},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.TMDB.Language = tt.language
		errs := cfg.Validate()
		if tt.valid && len(errs) != 0 {
			t.Errorf("language %q: expected valid, got %v", tt.language, errs)
		}
		if !tt.valid && len(errs) == 0 {
			t.Errorf("language %q: expected validation error", tt.language)
		}
	}
}
