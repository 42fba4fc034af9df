package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nextlevelbuilder/guessgame/internal/config"
	"github.com/nextlevelbuilder/guessgame/internal/game"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one round (default command)",
		Run: func(cmd *cobra.Command, args []string) {
			runPlay()
		},
	}
}

func runPlay() {
	cfg := loadConfig()
	setupLogging(cfg)

	// Ctrl+C keeps its default behavior: the read below has no timeout
	// and only process termination interrupts it.
	err := playGame(context.Background(), os.Stdin, os.Stdout, game.NewRandomSource(), useColor(cfg, os.Stdout))
	switch {
	case err == nil:
	case errors.Is(err, game.ErrInputClosed):
		fmt.Fprintln(os.Stderr, "Error: input closed before the number was guessed")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs a single game over the given streams.
func playGame(ctx context.Context, in io.Reader, out io.Writer, src game.RandomSource, color bool) error {
	loop := game.NewLoop(game.Config{
		Source:   src,
		Input:    game.NewLineReader(in),
		Renderer: game.NewRenderer(out, color),
		Logger:   slog.Default(),
	})
	_, err := loop.Run(ctx)
	return err
}

// useColor resolves the configured color mode against the output stream.
func useColor(cfg *config.Config, out *os.File) bool {
	switch cfg.Display.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(out.Fd()))
	}
}
