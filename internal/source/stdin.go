package source

import (
	"io"
	"os"
)

// StdinSource reads lines from standard input (pipe mode).
type StdinSource struct {
	r       io.Reader
	maxLine int
}

// NewStdinSource creates a source that reads from r, or os.Stdin when r is
// nil. Lines longer than maxLine bytes fail the read; zero selects
// DefaultMaxLine.
func NewStdinSource(r io.Reader, maxLine int) *StdinSource {
	if r == nil {
		r = os.Stdin
	}
	return &StdinSource{r: r, maxLine: maxLine}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Open wraps the stream in a Reader. The process's standard input is never
// closed by the Reader.
func (s *StdinSource) Open() (*Reader, error) {
	return newReader(s.Name(), decode(s.r), nil, s.maxLine), nil
}
