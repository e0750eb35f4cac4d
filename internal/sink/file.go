package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Geun-Oh/not/internal/fault"
	"github.com/Geun-Oh/not/internal/filelock"
)

// FileSink overwrites a file in place. Lines are staged in a temporary
// file and copied into the target only by Flush, so a run that never
// flushes leaves the target byte for byte as it was. After a successful
// Flush the target holds exactly the lines written, with no bytes left over
// from any previous, longer content.
type FileSink struct {
	path   string
	file   *os.File // target, exclusively locked
	stage  *os.File
	w      *bufio.Writer
	closed bool
}

// OpenFileSink opens or creates the file at path under an exclusive lock
// and prepares the staging file. Existing content is left in place until
// Flush replaces it.
func OpenFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open output: %w", fault.ErrSink, err)
	}

	if err := filelock.Exclusive(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: lock output: %w", fault.ErrSink, err)
	}

	stage, err := os.CreateTemp("", "not-"+filepath.Base(path)+".*")
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: stage output %s: %w", fault.ErrSink, path, err)
	}

	return &FileSink{
		path:  path,
		file:  f,
		stage: stage,
		w:     bufio.NewWriterSize(stage, bufferSize),
	}, nil
}

// Write outputs a line.
func (s *FileSink) Write(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("%w: write %s: %w", fault.ErrSink, s.path, err)
	}
	if _, err := s.w.WriteString(newline); err != nil {
		return fmt.Errorf("%w: write %s: %w", fault.ErrSink, s.path, err)
	}
	return nil
}

// Flush copies every staged line to the start of the target, syncs it and
// truncates it to the copied length. Truncation only happens once the copy
// and sync succeeded.
func (s *FileSink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %w", fault.ErrSink, s.path, err)
	}
	if _, err := s.stage.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rewind staged %s: %w", fault.ErrSink, s.path, err)
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek %s: %w", fault.ErrSink, s.path, err)
	}
	// Leaves the stage at its end, so later writes append.
	n, err := io.Copy(s.file, s.stage)
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", fault.ErrSink, s.path, err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %w", fault.ErrSink, s.path, err)
	}
	if err := s.file.Truncate(n); err != nil {
		return fmt.Errorf("%w: truncate %s: %w", fault.ErrSink, s.path, err)
	}
	return nil
}

// Close removes the staging file and releases the lock and the target
// handle. Only the first call has an effect. Unflushed lines are discarded.
func (s *FileSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := filelock.Unlock(s.file); err != nil {
		errs = append(errs, err)
	}
	if err := s.stage.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := os.Remove(s.stage.Name()); err != nil {
		errs = append(errs, err)
	}
	if err := s.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: close %s: %w", fault.ErrSink, s.path, err)
	}
	return nil
}

// Name returns the sink identifier.
func (s *FileSink) Name() string {
	return "file:" + s.path
}
