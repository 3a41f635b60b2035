package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lingosub/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Vocabulary.Size != 2000 {
		t.Fatalf("expected default vocabulary size, got %d", cfg.Vocabulary.Size)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected console format, got %q", cfg.Logging.Format)
	}
	if cfg.Translation.Enabled {
		t.Fatal("translation should default to disabled")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := writeConfig(t, `
[vocabulary]
size = 500

[translation]
enabled = true
base_url = "http://localhost:5000/translate"
api_key = "secret"
context_window = 3

[logging]
format = "json"
level = "debug"
`)
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Vocabulary.Size != 500 {
		t.Fatalf("vocabulary size = %d", cfg.Vocabulary.Size)
	}
	if !cfg.Translation.Enabled || cfg.Translation.BaseURL != "http://localhost:5000/translate" {
		t.Fatalf("translation = %+v", cfg.Translation)
	}
	if cfg.Translation.ContextWindow != 3 {
		t.Fatalf("context window = %d", cfg.Translation.ContextWindow)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
}

func TestLoadExpandsPaths(t *testing.T) {
	path := writeConfig(t, `
[paths]
vocab_dir = "~/vocab-lists"
`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}
	want := filepath.Join(home, "vocab-lists")
	if cfg.Paths.VocabDir != want {
		t.Fatalf("vocab dir = %q, want %q", cfg.Paths.VocabDir, want)
	}
	if !filepath.IsAbs(cfg.Paths.CacheDir) {
		t.Fatalf("cache dir not absolute: %q", cfg.Paths.CacheDir)
	}
}

func TestLoadRejectsInvalidVocabularyTemplate(t *testing.T) {
	path := writeConfig(t, `
[vocabulary]
list_url_template = "https://example.com/%s/list.txt"
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for template with one placeholder")
	}
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	path := writeConfig(t, "[vocabulary\nsize = 5")
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNormalizeFallsBackOnUnknownLogFormat(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = "xml"
`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected console fallback, got %q", cfg.Logging.Format)
	}
}

func TestTranslationAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("LIBRETRANSLATE_API_KEY", "env-key")
	path := writeConfig(t, "")
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Translation.APIKey != "env-key" {
		t.Fatalf("api key = %q", cfg.Translation.APIKey)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.VocabDir = filepath.Join(base, "vocab")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.VocabDir, cfg.Paths.CacheDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
	}
}

func TestTranslationCachePath(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.CacheDir = "/tmp/lingosub-cache"
	if got := cfg.TranslationCachePath(); got != filepath.Join("/tmp/lingosub-cache", "translations.db") {
		t.Fatalf("cache path = %q", got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[vocabulary]") {
		t.Fatal("sample missing vocabulary section")
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}
