package source

import (
	"fmt"
	"os"

	"github.com/Geun-Oh/not/internal/fault"
	"github.com/Geun-Oh/not/internal/filelock"
)

// FileSource reads lines from a named file.
type FileSource struct {
	path    string
	maxLine int
}

// NewFileSource creates a source that reads from the file at path.
// Lines longer than maxLine bytes fail the read; zero selects
// DefaultMaxLine.
func NewFileSource(path string, maxLine int) *FileSource {
	return &FileSource{path: path, maxLine: maxLine}
}

// Name returns the source identifier.
func (s *FileSource) Name() string {
	return fmt.Sprintf("file:%s", s.path)
}

// Open opens the file for reading under a shared lock. Other readers are
// not blocked; a file held under an exclusive lock fails to open.
func (s *FileSource) Open() (*Reader, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open input: %w", fault.ErrSource, err)
	}

	if info, err := f.Stat(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: stat input: %w", fault.ErrSource, err)
	} else if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: open input %s: is a directory", fault.ErrSource, s.path)
	}

	if err := filelock.Shared(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: lock input: %w", fault.ErrSource, err)
	}

	return newReader(s.Name(), decode(f), f, s.maxLine), nil
}
