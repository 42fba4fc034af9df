package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GUESSGAME_LOG_LEVEL", "")
	t.Setenv("GUESSGAME_COLOR", "")
	// t.Setenv cannot unset; restore NO_COLOR by hand.
	if v, ok := os.LookupEnv("NO_COLOR"); ok {
		os.Unsetenv("NO_COLOR")
		t.Cleanup(func() { os.Setenv("NO_COLOR", v) })
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != LevelWarn {
		t.Errorf("level = %q, want %q", cfg.Log.Level, LevelWarn)
	}
	if cfg.Display.Color != ColorAuto {
		t.Errorf("color = %q, want %q", cfg.Display.Color, ColorAuto)
	}
}

func TestLoad_JSON5(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{
  // comments and trailing commas are fine
  log: { level: "DEBUG" },
  display: { color: "off", },
}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != LevelDebug {
		t.Errorf("level = %q, want %q", cfg.Log.Level, LevelDebug)
	}
	if cfg.Display.Color != ColorNever {
		t.Errorf("color = %q, want %q", cfg.Display.Color, ColorNever)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("slog level = %v, want debug", cfg.SlogLevel())
	}
}

func TestLoad_Malformed(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{log: "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{display: {color: "rainbow"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GUESSGAME_LOG_LEVEL", "info")
	t.Setenv("GUESSGAME_COLOR", "always")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != LevelInfo {
		t.Errorf("level = %q, want %q", cfg.Log.Level, LevelInfo)
	}
	if cfg.Display.Color != ColorAlways {
		t.Errorf("color = %q, want %q", cfg.Display.Color, ColorAlways)
	}

	t.Setenv("NO_COLOR", "1")
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Display.Color != ColorNever {
		t.Errorf("NO_COLOR: color = %q, want %q", cfg.Display.Color, ColorNever)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Default()
	cfg.Log.Level = LevelError

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Log.Level != LevelError {
		t.Errorf("level = %q, want %q", got.Log.Level, LevelError)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := ExpandHome("~/.guessgame/config.json"); got != filepath.Join(home, ".guessgame", "config.json") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/etc/x"); got != "/etc/x" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := ExpandHome("~user/x"); got != "~user/x" {
		t.Errorf("~user path changed: %q", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		fn      func(string) (string, error)
		in      string
		want    string
		wantErr bool
	}{
		{NormalizeColorMode, "", ColorAuto, false},
		{NormalizeColorMode, "  Always ", ColorAlways, false},
		{NormalizeColorMode, "false", ColorNever, false},
		{NormalizeColorMode, "sometimes", "", true},
		{NormalizeLogLevel, "", LevelWarn, false},
		{NormalizeLogLevel, "WARNING", LevelWarn, false},
		{NormalizeLogLevel, "trace", "", true},
	}
	for _, tt := range tests {
		got, err := tt.fn(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("normalize(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
