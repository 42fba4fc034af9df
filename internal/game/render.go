package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Hint is the outcome of comparing a guess with the secret.
type Hint int

const (
	HintSmall Hint = iota
	HintBig
	HintWin
)

func (h Hint) String() string {
	switch h {
	case HintSmall:
		return "small"
	case HintBig:
		return "big"
	case HintWin:
		return "WIN!"
	default:
		return fmt.Sprintf("Hint(%d)", int(h))
	}
}

// Renderer writes game messages to an output stream.
// With color disabled the output is plain text with no escape sequences.
type Renderer struct {
	w io.Writer

	prompt lipgloss.Style
	nan    lipgloss.Style
	echo   lipgloss.Style
	small  lipgloss.Style
	big    lipgloss.Style
	win    lipgloss.Style
	reveal lipgloss.Style
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if color {
		lr.SetColorProfile(termenv.ANSI)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:      w,
		prompt: lr.NewStyle().Bold(true),
		nan:    lr.NewStyle().Foreground(lipgloss.Color("3")),
		echo:   lr.NewStyle().Faint(true),
		small:  lr.NewStyle().Foreground(lipgloss.Color("4")),
		big:    lr.NewStyle().Foreground(lipgloss.Color("1")),
		win:    lr.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		reveal: lr.NewStyle().Bold(true),
	}
}

func (r *Renderer) line(style lipgloss.Style, text string) error {
	_, err := fmt.Fprintln(r.w, style.Render(text))
	return err
}

// Prompt asks for the next guess.
func (r *Renderer) Prompt() error {
	return r.line(r.prompt, "Your guess:")
}

// NotANumber reports a line that did not parse.
func (r *Renderer) NotANumber() error {
	return r.line(r.nan, "NaN")
}

// Echo repeats the parsed guess.
func (r *Renderer) Echo(guess int) error {
	return r.line(r.echo, fmt.Sprintf("Guess: %d", guess))
}

// Hint reports the comparison outcome.
func (r *Renderer) Hint(h Hint) error {
	switch h {
	case HintSmall:
		return r.line(r.small, h.String())
	case HintBig:
		return r.line(r.big, h.String())
	default:
		return r.line(r.win, h.String())
	}
}

// Reveal prints the secret once the game is over.
func (r *Renderer) Reveal(secret int) error {
	return r.line(r.reveal, fmt.Sprintf("Secret number: %d", secret))
}
