package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Geun-Oh/not/internal/fault"
)

// TerminalSink writes lines to a stream, normally standard output.
type TerminalSink struct {
	w *bufio.Writer
}

// NewTerminalSink creates a sink that writes to w, or os.Stdout when w is
// nil. Output is buffered until Flush.
func NewTerminalSink(w io.Writer) *TerminalSink {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalSink{w: bufio.NewWriterSize(w, bufferSize)}
}

// Write outputs a line.
func (s *TerminalSink) Write(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("%w: write %s: %w", fault.ErrSink, s.Name(), err)
	}
	if _, err := s.w.WriteString(newline); err != nil {
		return fmt.Errorf("%w: write %s: %w", fault.ErrSink, s.Name(), err)
	}
	return nil
}

// Flush writes any buffered output to the stream.
func (s *TerminalSink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %w", fault.ErrSink, s.Name(), err)
	}
	return nil
}

// Close is a no-op; the stream belongs to the caller.
func (s *TerminalSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *TerminalSink) Name() string { return "stdout" }
