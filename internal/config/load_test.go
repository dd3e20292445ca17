package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "videos.txt")
	os.WriteFile(catalogPath, []byte("Amazing Cats | cat1 | cat\n"), 0644)

	cfgPath := writeConfig(t, `
[catalog]
path = "`+catalogPath+`"

[log]
level = "DEBUG"

[player]
seed = 42

[repl]
prompt = "vidplay> "
suggest = false
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog.Path != catalogPath {
		t.Errorf("expected catalog path %s, got %s", catalogPath, cfg.Catalog.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Log.Level)
	}
	if cfg.Player.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Player.Seed)
	}
	if cfg.REPL.Prompt != "vidplay> " || cfg.REPL.Suggest {
		t.Errorf("unexpected repl config: %+v", cfg.REPL)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfgPath := writeConfig(t, `
[repl]
suggest = false
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected default level warn, got %s", cfg.Log.Level)
	}
	if !cfg.History.Enabled || cfg.History.Path != ":memory:" {
		t.Errorf("expected in-memory history, got %+v", cfg.History)
	}
	if cfg.REPL.Prompt != "> " || !cfg.REPL.Welcome {
		t.Errorf("expected default prompt and welcome, got %+v", cfg.REPL)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("VIDPLAY_MISSING_CATALOG")
	cfgPath := writeConfig(t, `
[catalog]
path = "${VIDPLAY_MISSING_CATALOG}"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if !strings.Contains(err.Error(), "VIDPLAY_MISSING_CATALOG") {
		t.Errorf("expected VIDPLAY_MISSING_CATALOG in error, got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[log]
level = "verbose"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid level")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("expected log.level in error, got %v", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	cfgPath := writeConfig(t, `[log`)

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	cfgPath := writeConfig(t, `
[catalog]
path = "/nonexistent/videos.txt"
`)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog.Path != "/nonexistent/videos.txt" {
		t.Errorf("expected catalog path kept, got %s", cfg.Catalog.Path)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("OPTIONAL_PROMPT")
	cfgPath := writeConfig(t, `
[repl]
prompt = "${OPTIONAL_PROMPT:-vp> }"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.REPL.Prompt != "vp> " {
		t.Errorf("expected prompt 'vp> ', got %q", cfg.REPL.Prompt)
	}
}

func TestLoad_IgnoresEnvVarsInComments(t *testing.T) {
	cfgPath := writeConfig(t, `
# Reference ${VIDPLAY_TEST_UNSET_IN_COMMENT} or ${VIDPLAY_TEST_UNSET_IN_COMMENT:?set me}
[log]
level = "info" # ${VIDPLAY_TEST_UNSET_IN_COMMENT}
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Log.Level)
	}
}
