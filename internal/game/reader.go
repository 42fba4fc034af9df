package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// LineReader yields one line of input per call.
// It returns ErrInputClosed once the underlying stream is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

type streamReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r. Each returned line is a fresh string that includes
// the trailing newline when one was present.
func NewLineReader(r io.Reader) LineReader {
	return &streamReader{r: bufio.NewReader(r)}
}

func (s *streamReader) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		// A final line without a newline still counts.
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("read line: %w", err)
}
