package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bochkarevko/timetable-bot/pkg/timetable"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// BaseURLEnv overrides the configured timetable service address.
const BaseURLEnv = "TIMETABLE_BASE_URL"

// DefaultTimezone is used to place lessons on a calendar.
const DefaultTimezone = "Europe/Moscow"

var validate = validator.New()

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	BaseURL       string `json:"base_url,omitempty" validate:"required,url"`
	Group         string `json:"group,omitempty"`
	Algorithms    string `json:"algorithms,omitempty"`
	Combinatorics string `json:"combinatorics,omitempty"`
	Timezone      string `json:"timezone,omitempty" validate:"required"`
	AccentColor   string `json:"accent_color,omitempty"`
}

// Default returns the configuration used when nothing is saved yet.
func Default() *AppConfig {
	return &AppConfig{
		BaseURL:  timetable.DefaultBaseURL,
		Timezone: DefaultTimezone,
	}
}

// Profile returns the saved enrollment tracks; empty values are unset.
func (c *AppConfig) Profile() timetable.Profile {
	return timetable.NewProfile(c.Group, c.Algorithms, c.Combinatorics)
}

// Location resolves the configured timezone.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks that the configuration is usable.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadEnv reads a .env file from the working directory if there is one.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// getConfigPath returns the absolute path to ~/.timetable.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".timetable.json"), nil
}

// Load reads the application configuration from disk.
// Returns the defaults if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	if env := os.Getenv(BaseURLEnv); env != "" {
		cfg.BaseURL = env
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
