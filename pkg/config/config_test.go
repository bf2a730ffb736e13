package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir, err := os.MkdirTemp("", "timetable-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
	t.Setenv(BaseURLEnv, "")

	// 1. Load with no existing file gives the defaults
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected default config, got %+v", cfg)
	}

	// 2. Modify and Save the config
	cfg.BaseURL = "http://timetable.local:8000"
	cfg.Group = "G2"
	cfg.Algorithms = "A1"
	cfg.AccentColor = "205"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".timetable.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Load the saved file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}

	p := loadedCfg.Profile()
	if p.Group == nil || *p.Group != "G2" {
		t.Errorf("expected profile group G2, got %v", p.Group)
	}
	if p.Combinatorics != nil {
		t.Errorf("expected combinatorics to be unset, got %q", *p.Combinatorics)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "timetable-config-err-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".timetable.json")
	err = os.WriteFile(configPath, []byte("invalid json { content"), 0644)
	if err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	_, err = Load()
	if err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigEnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
	t.Setenv(BaseURLEnv, "https://timetable.example.org")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://timetable.example.org" {
		t.Errorf("expected base URL from environment, got %s", cfg.BaseURL)
	}
}

func TestConfigValidation(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
	t.Setenv(BaseURLEnv, "")

	cfg := Default()
	cfg.BaseURL = "not a url"
	if err := Save(cfg); err == nil {
		t.Errorf("expected Save to reject an invalid base URL")
	}

	configPath := filepath.Join(tempDir, ".timetable.json")
	if err := os.WriteFile(configPath, []byte(`{"base_url": "::::"}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Errorf("expected Load to reject an invalid base URL")
	}
}

func TestConfigLocation(t *testing.T) {
	cfg := Default()
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("failed to load default timezone: %v", err)
	}
	if loc.String() != DefaultTimezone {
		t.Errorf("expected %s, got %s", DefaultTimezone, loc.String())
	}

	cfg.Timezone = "Mars/Olympus"
	if _, err := cfg.Location(); err == nil {
		t.Errorf("expected error for unknown timezone")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	defer os.Chdir(wd)

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}

	// no .env is fine
	if err := LoadEnv(); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}

	t.Setenv(BaseURLEnv, "")
	os.Unsetenv(BaseURLEnv)
	if err := os.WriteFile(".env", []byte(BaseURLEnv+"=http://from-dotenv:8000\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	if err := LoadEnv(); err != nil {
		t.Fatalf("failed to load .env: %v", err)
	}
	if got := os.Getenv(BaseURLEnv); got != "http://from-dotenv:8000" {
		t.Errorf("expected base URL from .env, got %q", got)
	}
}
