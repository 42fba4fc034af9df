package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/guessgame/internal/config"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var (
	cfgFile   string
	verbose   bool
	colorFlag string
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "guessgame",
		Short: "Guess the secret number between 1 and 100",
		Long: `guessgame picks a secret number between 1 and 100 and reads guesses
from standard input, one per line, answering "small" or "big" until the
guess is right.

Examples:
  guessgame                      # Play interactively
  printf '50\n25\n' | guessgame  # Scripted guesses
  guessgame --color never        # Plain output`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			runPlay()
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $GUESSGAME_CONFIG or "+config.DefaultPath+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringVar(&colorFlag, "color", "", "color output: auto, always, never")

	root.AddCommand(playCmd())
	root.AddCommand(configCmd())
	root.AddCommand(doctorCmd())
	root.AddCommand(versionCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("guessgame", Version)
		},
	}
}

// resolveConfigPath returns --config, then $GUESSGAME_CONFIG, then the default.
func resolveConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if v := os.Getenv("GUESSGAME_CONFIG"); v != "" {
		return v
	}
	return config.ExpandHome(config.DefaultPath)
}

// loadConfig loads the config and layers command-line flags on top.
// On failure it prints the error and exits.
func loadConfig() *config.Config {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlagOverrides(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// applyFlagOverrides layers --color and --verbose over cfg.
func applyFlagOverrides(cfg *config.Config) error {
	if colorFlag != "" {
		mode, err := config.NormalizeColorMode(colorFlag)
		if err != nil {
			return err
		}
		cfg.Display.Color = mode
	}
	if verbose {
		cfg.Log.Level = config.LevelDebug
	}
	return nil
}

func setupLogging(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}
