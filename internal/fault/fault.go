// Package fault defines the error kinds surfaced by the not pipeline.
package fault

import "errors"

// Sentinel kinds. Packages wrap them together with the underlying cause:
//
//	fmt.Errorf("%w: open %s: %w", fault.ErrSource, path, err)
var (
	// ErrConfig marks a missing or invalid setting. Raised before any I/O.
	ErrConfig = errors.New("configuration error")
	// ErrSource marks a failure to open or read the input.
	ErrSource = errors.New("source i/o error")
	// ErrSink marks a failure to open, write or commit the output.
	ErrSink = errors.New("sink i/o error")
)

// Kind returns the sentinel err was wrapped with, or nil if it carries none.
func Kind(err error) error {
	for _, k := range []error{ErrConfig, ErrSource, ErrSink} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
