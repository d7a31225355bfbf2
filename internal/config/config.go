package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ColorMode controls styled output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds the settings for the parcel CLI.
type Config struct {
	DBPath      string    `toml:"db_path"`
	LogUseCases bool      `toml:"log_use_cases"`
	Color       ColorMode `toml:"color"`
}

// DefaultConfig returns a Config with sensible defaults rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:      filepath.Join(home, ".parcel", "parcel.db"),
		LogUseCases: false,
		Color:       ColorAuto,
	}
}

// Load builds the configuration: defaults, then the TOML file named by
// PARCEL_CONFIG (or ~/.parcel/config.toml when present), then environment
// overrides. A missing default file is fine; a missing explicit one is not.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	path := os.Getenv("PARCEL_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, ".parcel", "config.toml")
	}
	if err := applyFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyFile(cfg *Config, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if !cfg.Color.valid() {
		return fmt.Errorf("config %s: invalid color %q (expected auto|always|never)", path, cfg.Color)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PARCEL_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PARCEL_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := ColorMode(os.Getenv("PARCEL_COLOR")); v.valid() {
		cfg.Color = v
	}
}

func (m ColorMode) valid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}
