package source

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geun-Oh/not/internal/fault"
)

// collect drains a reader, returning the lines and the first error.
func collect(t *testing.T, r *Reader) ([]string, error) {
	t.Helper()
	var lines []string
	for line, err := range r.Lines() {
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

type trackingCloser struct {
	io.Reader
	closes int
}

func (c *trackingCloser) Close() error {
	c.closes++
	return nil
}

func TestReaderTrimsAndSkipsBlank(t *testing.T) {
	input := "  foo  \n\t\n   \nbar\r\n baz \n\n"
	r := newReader("test", decode(strings.NewReader(input)), nil, 0)

	lines, err := collect(t, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz"}, lines)
}

func TestReaderPreservesOrder(t *testing.T) {
	input := "3\n1\n2\n1\n"
	r := newReader("test", strings.NewReader(input), nil, 0)

	lines, err := collect(t, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2", "1"}, lines)
}

func TestReaderClosesOnExhaustion(t *testing.T) {
	c := &trackingCloser{Reader: strings.NewReader("a\nb\n")}
	r := newReader("test", c, c, 0)

	_, err := collect(t, r)
	require.NoError(t, err)
	assert.Equal(t, 1, c.closes)

	require.NoError(t, r.Close())
	assert.Equal(t, 1, c.closes, "Close after exhaustion must not close again")
}

func TestReaderClosesOnEarlyStop(t *testing.T) {
	c := &trackingCloser{Reader: strings.NewReader("a\nb\nc\n")}
	r := newReader("test", c, c, 0)

	for line, err := range r.Lines() {
		require.NoError(t, err)
		if line == "a" {
			break
		}
	}
	assert.Equal(t, 1, c.closes)
}

func TestReaderIsSingleUse(t *testing.T) {
	r := newReader("test", strings.NewReader("a\n"), nil, 0)
	_, err := collect(t, r)
	require.NoError(t, err)

	_, err = collect(t, r)
	assert.ErrorIs(t, err, fault.ErrSource)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestReaderReportsReadError(t *testing.T) {
	cause := errors.New("device gone")
	src := io.MultiReader(strings.NewReader("a\n"), failingReader{err: cause})
	c := &trackingCloser{Reader: src}
	r := newReader("test", c, c, 0)

	lines, err := collect(t, r)
	assert.Equal(t, []string{"a"}, lines)
	assert.ErrorIs(t, err, fault.ErrSource)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, c.closes)
}

func TestReaderRejectsOverlongLine(t *testing.T) {
	input := strings.Repeat("x", 64) + "\n"
	r := newReader("test", strings.NewReader(input), nil, 16)

	_, err := collect(t, r)
	assert.ErrorIs(t, err, fault.ErrSource)
}

func TestStdinSource(t *testing.T) {
	s := NewStdinSource(strings.NewReader("foobar\nbarfoo\nFOO\n"), 0)
	assert.Equal(t, "stdin", s.Name())

	r, err := s.Open()
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "stdin", r.Name())

	lines, err := collect(t, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"foobar", "barfoo", "FOO"}, lines)
}

func TestDecodeReplacesInvalidUTF8(t *testing.T) {
	r := newReader("test", decode(strings.NewReader("ok\n\xff\xfeab\n")), nil, 0)

	lines, err := collect(t, r)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "ok", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "ab"))
	assert.Contains(t, lines[1], "�")
}
