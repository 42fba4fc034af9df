package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nextlevelbuilder/guessgame/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and manage configuration",
	}
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configPathCmd())
	cmd.AddCommand(configValidateCmd())
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			data, err := encodeConfig(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding config: %s\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
		},
	}
}

// encodeConfig renders cfg as indented JSON for display.
func encodeConfig(cfg *config.Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(resolveConfigPath())
		},
	}
}

func configValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			cfgPath := resolveConfigPath()
			if _, err := config.Load(cfgPath); err != nil {
				fmt.Fprintf(os.Stderr, "Invalid config: %s\n", err)
				os.Exit(1)
			}
			fmt.Printf("Config at %s is valid.\n", cfgPath)
		},
	}
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file, asking for settings when run in a terminal",
		Long: `Write a config file. In a terminal, prompts for color mode and log level.
With --force, or when stdin is not a terminal, writes the defaults.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfgPath := resolveConfigPath()
			if _, err := os.Stat(cfgPath); err == nil && !force {
				fmt.Fprintf(os.Stderr, "Config already exists at %s (use --force to overwrite)\n", cfgPath)
				os.Exit(1)
			}

			interactive := !force && term.IsTerminal(int(os.Stdin.Fd()))
			cfg, err := buildInitConfig(interactive, promptSelect[string])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Cancelled: %s\n", err)
				os.Exit(1)
			}
			if err := config.Save(cfgPath, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing config: %s\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %s\n", cfgPath)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config with defaults, no prompts")
	return cmd
}

// selectFunc has the shape of promptSelect[string].
type selectFunc func(title string, options []SelectOption[string], defaultIdx int) (string, error)

var colorOptions = []SelectOption[string]{
	{Label: "auto (color when stdout is a terminal)", Value: config.ColorAuto},
	{Label: "always", Value: config.ColorAlways},
	{Label: "never", Value: config.ColorNever},
}

var levelOptions = []SelectOption[string]{
	{Label: "debug", Value: config.LevelDebug},
	{Label: "info", Value: config.LevelInfo},
	{Label: "warn", Value: config.LevelWarn},
	{Label: "error", Value: config.LevelError},
}

// buildInitConfig returns the defaults, or asks for each setting when interactive.
func buildInitConfig(interactive bool, ask selectFunc) (*config.Config, error) {
	cfg := config.Default()
	if !interactive {
		return cfg, nil
	}

	color, err := ask("Color output", colorOptions, optionIndex(colorOptions, cfg.Display.Color))
	if err != nil {
		return nil, err
	}
	level, err := ask("Log level", levelOptions, optionIndex(levelOptions, cfg.Log.Level))
	if err != nil {
		return nil, err
	}

	cfg.Display.Color = color
	cfg.Log.Level = level
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
