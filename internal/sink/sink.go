// Package sink defines the Sink interface for pipeline output.
package sink

import (
	"io"
	"runtime"
)

// bufferSize is the write buffer placed in front of the target.
const bufferSize = 16 * 1024

// newline is the platform line terminator written after every line.
var newline = lineTerminator(runtime.GOOS)

func lineTerminator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Sink receives retained lines and writes them to an output destination.
type Sink interface {
	// Write outputs a single line followed by the line terminator.
	Write(line string) error

	// Flush commits everything written so far to the destination.
	Flush() error

	// Close releases resources held by the sink. It does not flush.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string
}

// Opener acquires a Sink. The pipeline calls it only after the source has
// been opened, so an unreadable input never touches the output.
type Opener func() (Sink, error)

// Stdout returns an Opener for a TerminalSink on w (os.Stdout when nil).
func Stdout(w io.Writer) Opener {
	return func() (Sink, error) {
		return NewTerminalSink(w), nil
	}
}

// File returns an Opener for a FileSink at path.
func File(path string) Opener {
	return func() (Sink, error) {
		s, err := OpenFileSink(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
