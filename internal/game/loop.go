// Package game implements the number guessing loop.
//
// A Loop draws one secret from a RandomSource, then reads guesses from a
// LineReader until one matches. Parse failures are reported and skipped;
// the end of the input stream before a win is fatal (ErrInputClosed).
package game

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// MinSecret is the smallest value the secret can take.
	MinSecret = 1
	// MaxSecret is the largest value the secret can take.
	MaxSecret = 100
)

// State is a step of the guessing loop.
type State int

const (
	AwaitingInput State = iota
	Evaluating
	Won
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case Evaluating:
		return "evaluating"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result summarizes a finished game.
type Result struct {
	GameID   string
	Secret   int
	Guesses  int // numeric guesses, including the winning one
	Rejected int // lines that failed to parse
}

// Config wires a Loop to its collaborators.
type Config struct {
	Source   RandomSource
	Input    LineReader
	Renderer *Renderer
	Logger   *slog.Logger // nil = slog.Default()
}

// Loop runs a single game.
type Loop struct {
	source RandomSource
	input  LineReader
	out    *Renderer
	logger *slog.Logger
	state  State
}

// NewLoop creates a loop. Source, Input and Renderer are required.
func NewLoop(cfg Config) *Loop {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		source: cfg.Source,
		input:  cfg.Input,
		out:    cfg.Renderer,
		logger: logger,
		state:  AwaitingInput,
	}
}

// State returns the current step of the loop.
func (l *Loop) State() State {
	return l.state
}

// Run plays one game to completion. It returns once the secret is guessed,
// the input is exhausted, or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	res := Result{GameID: uuid.NewString()[:8]}
	log := l.logger.With("game", res.GameID)

	secret := l.source.IntRange(MinSecret, MaxSecret+1)
	if secret < MinSecret || secret > MaxSecret {
		return res, fmt.Errorf("%w: %d", ErrSecretOutOfRange, secret)
	}
	res.Secret = secret
	l.state = AwaitingInput
	log.Debug("game started", "secret", secret)

	for l.state != Won {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if err := l.out.Prompt(); err != nil {
			return res, fmt.Errorf("write prompt: %w", err)
		}

		line, err := l.input.ReadLine()
		if err != nil {
			return res, fmt.Errorf("read guess: %w", err)
		}

		guess, err := ParseGuess(line)
		if err != nil {
			res.Rejected++
			log.Debug("guess rejected", "input", strings.TrimSpace(line))
			if err := l.out.NotANumber(); err != nil {
				return res, fmt.Errorf("write message: %w", err)
			}
			continue
		}

		l.state = Evaluating
		res.Guesses++
		if err := l.out.Echo(guess); err != nil {
			return res, fmt.Errorf("write message: %w", err)
		}

		hint := Compare(guess, secret)
		log.Debug("guess evaluated", "guess", guess, "hint", hint.String())
		if err := l.out.Hint(hint); err != nil {
			return res, fmt.Errorf("write message: %w", err)
		}

		if hint == HintWin {
			l.state = Won
		} else {
			l.state = AwaitingInput
		}
	}

	log.Info("game won", "guesses", res.Guesses, "rejected", res.Rejected)
	if err := l.out.Reveal(secret); err != nil {
		return res, fmt.Errorf("write message: %w", err)
	}
	return res, nil
}

// ParseGuess trims surrounding whitespace from line and parses the rest as
// a base-10 signed 32-bit integer.
func ParseGuess(line string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Compare reports where guess lies relative to secret.
func Compare(guess, secret int) Hint {
	switch {
	case guess < secret:
		return HintSmall
	case guess > secret:
		return HintBig
	default:
		return HintWin
	}
}
