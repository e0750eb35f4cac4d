// Package source defines the Source interface and the readers that turn an
// input stream into trimmed, non-empty lines.
package source

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// bufferSize is the read buffer placed in front of the decoder.
	bufferSize = 16 * 1024
	// DefaultMaxLine is the longest record accepted when none is configured.
	DefaultMaxLine = 1024 * 1024
)

// Source opens an input for a single forward pass.
type Source interface {
	// Open acquires the underlying stream. The returned Reader must be
	// closed by the caller, though exhausting Lines closes it as well.
	Open() (*Reader, error)

	// Name returns a human-readable identifier for this source.
	Name() string
}

// decode wraps r with a UTF-8 decoder that honours a leading byte-order
// mark (UTF-8, UTF-16LE or UTF-16BE) and replaces invalid bytes with U+FFFD.
func decode(r io.Reader) io.Reader {
	br := bufio.NewReaderSize(r, bufferSize)
	return transform.NewReader(br, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
