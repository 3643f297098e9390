package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.SelectProject != "enter" {
		t.Errorf("Default SelectProject key = %s, want enter", defaults.SelectProject)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", tempDir)
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvState, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	wantData := filepath.Join(tempDir, ".eustache")
	if cfg.DataDir != wantData {
		t.Errorf("DataDir = %s, want %s", cfg.DataDir, wantData)
	}
	if cfg.DatabasePath != filepath.Join(wantData, "eustache.db") {
		t.Errorf("DatabasePath = %s", cfg.DatabasePath)
	}
	if cfg.StatePath != filepath.Join(wantData, "state.yaml") {
		t.Errorf("StatePath = %s", cfg.StatePath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if !cfg.ShouldWatchSelection() {
		t.Error("watch_selection should default to true")
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
}

func TestStatePathFollowsXDGStateHome(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))
	t.Setenv(EnvState, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := filepath.Join(tempDir, "state", "eustache", "state.yaml")
	if cfg.StatePath != want {
		t.Errorf("StatePath = %s, want %s", cfg.StatePath, want)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvState, "")
	t.Setenv(EnvLogLevel, "")

	configDir := filepath.Join(tempDir, "eustache")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `data_dir: /srv/eustache
log_level: debug
watch_selection: false
key_mappings:
  quit: "x"
theme:
  accent: "#FF0000"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.DatabasePath != filepath.Join("/srv/eustache", "eustache.db") {
		t.Errorf("DatabasePath = %s, want derived from data_dir", cfg.DatabasePath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.ShouldWatchSelection() {
		t.Error("watch_selection: false was ignored")
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	// Unset keys fall back to defaults
	if cfg.KeyMappings.Refresh != "r" {
		t.Errorf("Refresh key = %s, want r (default)", cfg.KeyMappings.Refresh)
	}
	if cfg.Theme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000", cfg.Theme.Accent)
	}
	if cfg.Theme.Muted != DefaultTheme().Muted {
		t.Errorf("Muted = %s, want default", cfg.Theme.Muted)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvDatabase, "/tmp/other.db")
	t.Setenv(EnvState, "/tmp/other-state.yaml")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DatabasePath != "/tmp/other.db" {
		t.Errorf("DatabasePath = %s", cfg.DatabasePath)
	}
	if cfg.StatePath != "/tmp/other-state.yaml" {
		t.Errorf("StatePath = %s", cfg.StatePath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
}

func TestInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvLogLevel, "")

	cfg := Default()
	cfg.LogLevel = "debug"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadFile(filepath.Join(tempDir, "eustache", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", loaded.LogLevel)
	}
}
