package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Valid(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "aniren.toml")
	content := `
[tmdb]
api_key  = "my-key"
language = "en-US"

[rename]
keep_tags = true
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TMDB.APIKey != "my-key" {
		t.Errorf("expected api key my-key, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Errorf("expected language en-US, got %q", cfg.TMDB.Language)
	}
	if !cfg.Rename.KeepTags {
		t.Error("expected keep_tags true")
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("ANIREN_MISSING_KEY")
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "aniren.toml")
	content := `
[tmdb]
api_key = "${ANIREN_MISSING_KEY}"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	if !strings.Contains(err.Error(), "ANIREN_MISSING_KEY") {
		t.Errorf("expected ANIREN_MISSING_KEY in error, got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "aniren.toml")
	content := `
[log]
level = "loud"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("expected log.level in error, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "aniren.toml")
	content := `
[rename]
season_folders = true
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TMDB.APIKey != DefaultTMDBKey {
		t.Errorf("expected fallback api key, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.Language != "zh-CN" {
		t.Errorf("expected default language zh-CN, got %q", cfg.TMDB.Language)
	}
	if cfg.Cache.TTLDays != 7 {
		t.Errorf("expected default ttl_days 7, got %d", cfg.Cache.TTLDays)
	}
	if cfg.Cache.Path == "" {
		t.Error("expected default cache path to be set")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Log.Level)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "aniren.toml")
	content := `
[log]
level = "loud"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "loud" {
		t.Errorf("expected log level loud, got %q", cfg.Log.Level)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("ANIREN_OPTIONAL_VAR")
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "aniren.toml")
	content := `
[tmdb]
language = "${ANIREN_OPTIONAL_VAR:-ja-JP}"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TMDB.Language != "ja-JP" {
		t.Errorf("expected language ja-JP, got %q", cfg.TMDB.Language)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/aniren.toml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDetailsTTL(t *testing.T) {
	cfg := Default()
	if cfg.DetailsTTL() != 7*24*time.Hour {
		t.Errorf("expected default ttl of 7 days, got %v", cfg.DetailsTTL())
	}

	cfg.Cache.TTLDays = 2
	if cfg.DetailsTTL() != 48*time.Hour {
		t.Errorf("expected 48h ttl, got %v", cfg.DetailsTTL())
	}
}
