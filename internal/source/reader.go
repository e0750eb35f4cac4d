package source

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/Geun-Oh/not/internal/fault"
)

// Reader yields the lines of one opened source. It is single use: Lines
// may be ranged over once.
type Reader struct {
	name     string
	scanner  *bufio.Scanner
	closer   io.Closer
	consumed bool
	closed   bool
}

func newReader(name string, r io.Reader, closer io.Closer, maxLine int) *Reader {
	if maxLine <= 0 {
		maxLine = DefaultMaxLine
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(bufferSize, maxLine)), maxLine)
	scanner.Split(scanRecords)

	return &Reader{
		name:    name,
		scanner: scanner,
		closer:  closer,
	}
}

// Lines returns the trimmed, non-empty lines of the source in input order.
// Lines consisting only of whitespace are skipped.
//
// A read failure is yielded once as a non-nil error and ends the sequence.
// The underlying stream is closed when the sequence ends, including when
// the consumer stops early.
func (r *Reader) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if r.consumed {
			yield("", fmt.Errorf("%w: %s: lines already consumed", fault.ErrSource, r.name))
			return
		}
		r.consumed = true
		defer r.Close()

		for r.scanner.Scan() {
			line := strings.TrimSpace(r.scanner.Text())
			if line == "" {
				continue
			}
			if !yield(line, nil) {
				return
			}
		}

		if err := r.scanner.Err(); err != nil {
			yield("", fmt.Errorf("%w: read %s: %w", fault.ErrSource, r.name, err))
			return
		}
		if err := r.Close(); err != nil {
			yield("", err)
		}
	}
}

// Close releases the underlying stream. It is safe to call more than once;
// only the first call closes.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer == nil {
		return nil
	}
	if err := r.closer.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", fault.ErrSource, r.name, err)
	}
	return nil
}

// Name returns the identifier of the source the reader was opened from.
func (r *Reader) Name() string {
	return r.name
}
