package game

import "errors"

var (
	// ErrInputClosed is returned when the input stream ends before the secret is guessed.
	ErrInputClosed = errors.New("input stream closed")

	// ErrSecretOutOfRange is returned when the random source yields a value outside [MinSecret, MaxSecret].
	ErrSecretOutOfRange = errors.New("secret out of range")
)
