package config

import (
	"fmt"
	"strings"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var colorAliases = map[string]string{
	"auto":   ColorAuto,
	"always": ColorAlways,
	"on":     ColorAlways,
	"true":   ColorAlways,
	"never":  ColorNever,
	"off":    ColorNever,
	"false":  ColorNever,
}

var levelAliases = map[string]string{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// NormalizeColorMode converts user input into one of auto, always, never.
//   - Case-insensitive, surrounding whitespace ignored
//   - on/true and off/false are accepted as aliases
//   - Empty input defaults to auto
func NormalizeColorMode(s string) (string, error) {
	return normalize("color mode", s, ColorAuto, colorAliases)
}

// NormalizeLogLevel converts user input into one of debug, info, warn, error.
// Empty input defaults to warn.
func NormalizeLogLevel(s string) (string, error) {
	return normalize("log level", s, LevelWarn, levelAliases)
}

func normalize(what, s, fallback string, aliases map[string]string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return fallback, nil
	}
	if v, ok := aliases[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid %s %q", what, s)
}
