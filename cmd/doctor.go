package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nextlevelbuilder/guessgame/internal/config"
	"github.com/nextlevelbuilder/guessgame/internal/game"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check environment and configuration health",
		Run: func(cmd *cobra.Command, args []string) {
			runDoctor(os.Stdout)
		},
	}
}

func runDoctor(w io.Writer) {
	fmt.Fprintln(w, "guessgame doctor")
	fmt.Fprintf(w, "  Version:  %s\n", Version)
	fmt.Fprintf(w, "  OS:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  Go:       %s\n", runtime.Version())
	fmt.Fprintf(w, "  Range:    %d..%d\n", game.MinSecret, game.MaxSecret)
	fmt.Fprintln(w)

	// Config
	cfgPath := resolveConfigPath()
	fmt.Fprintf(w, "  Config:   %s", cfgPath)
	if _, err := os.Stat(cfgPath); err != nil {
		fmt.Fprintln(w, " (not found, using defaults)")
	} else {
		fmt.Fprintln(w, " (OK)")
	}

	// Report load errors instead of exiting, unlike loadConfig.
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(w, "  Config load error: %s\n", err)
		return
	}
	if err := applyFlagOverrides(cfg); err != nil {
		fmt.Fprintf(w, "  Flag error: %s\n", err)
		return
	}
	fmt.Fprintf(w, "    %-12s %s\n", "log level:", cfg.Log.Level)
	fmt.Fprintf(w, "    %-12s %s\n", "color:", cfg.Display.Color)

	// Terminal
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Terminal:")
	checkTerminal(w, "stdin", os.Stdin)
	checkTerminal(w, "stdout", os.Stdout)
	fmt.Fprintf(w, "    %-12s %v\n", "colored:", useColor(cfg, os.Stdout))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Doctor check complete.")
}

func checkTerminal(w io.Writer, name string, f *os.File) {
	status := "pipe/file"
	if term.IsTerminal(int(f.Fd())) {
		status = "terminal"
	}
	fmt.Fprintf(w, "    %-12s %s\n", name+":", status)
}
