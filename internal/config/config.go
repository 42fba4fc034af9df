// Package config loads guessgame settings from an optional JSON5 file,
// then applies GUESSGAME_* environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/titanous/json5"
)

// DefaultPath is used when neither --config nor GUESSGAME_CONFIG is set.
const DefaultPath = "~/.guessgame/config.json"

// Config is the root configuration.
type Config struct {
	Log     LogConfig     `json:"log"`
	Display DisplayConfig `json:"display"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level string `json:"level"` // debug, info, warn, error
}

// DisplayConfig controls how game messages are rendered.
type DisplayConfig struct {
	Color string `json:"color"` // auto, always, never
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: LevelWarn},
		Display: DisplayConfig{Color: ColorAuto},
	}
}

// Load reads the config at path on top of Default and applies env overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ExpandHome(path))
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Debug("config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json5.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as indented JSON, creating parent directories.
func Save(path string, cfg *Config) error {
	path = ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ApplyEnvOverrides overlays GUESSGAME_LOG_LEVEL, GUESSGAME_COLOR and NO_COLOR.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GUESSGAME_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("GUESSGAME_COLOR"); v != "" {
		c.Display.Color = v
	}
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Display.Color = ColorNever
	}
}

// Validate normalizes fields in place and rejects unknown values.
func (c *Config) Validate() error {
	level, err := NormalizeLogLevel(c.Log.Level)
	if err != nil {
		return err
	}
	color, err := NormalizeColorMode(c.Display.Color)
	if err != nil {
		return err
	}
	c.Log.Level = level
	c.Display.Color = color
	return nil
}

// SlogLevel maps Log.Level to a slog.Level. Unknown values map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
