package sink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geun-Oh/not/internal/fault"
)

func TestLineTerminator(t *testing.T) {
	assert.Equal(t, "\r\n", lineTerminator("windows"))
	assert.Equal(t, "\n", lineTerminator("linux"))
	assert.Equal(t, "\n", lineTerminator("darwin"))
}

func TestTerminalSinkWritesInOrder(t *testing.T) {
	var buf bytes.Buffer
	s := NewTerminalSink(&buf)

	for _, line := range []string{"one", "two", "three"} {
		require.NoError(t, s.Write(line))
	}
	assert.Empty(t, buf.String(), "output is buffered until Flush")

	require.NoError(t, s.Flush())
	require.NoError(t, s.Close())
	assert.Equal(t, "one"+newline+"two"+newline+"three"+newline, buf.String())
	assert.Equal(t, "stdout", s.Name())
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestTerminalSinkFlushError(t *testing.T) {
	cause := errors.New("broken pipe")
	s := NewTerminalSink(failingWriter{err: cause})

	require.NoError(t, s.Write("buffered"))
	err := s.Flush()
	assert.ErrorIs(t, err, fault.ErrSink)
	assert.ErrorIs(t, err, cause)
}
