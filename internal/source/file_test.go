package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geun-Oh/not/internal/fault"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFileSourceReadsLines(t *testing.T) {
	path := writeFile(t, []byte("foo\n\n  bar  \nbaz"))
	s := NewFileSource(path, 0)
	assert.Equal(t, "file:"+path, s.Name())

	r, err := s.Open()
	require.NoError(t, err)
	defer r.Close()

	lines, err := collect(t, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz"}, lines)
}

func TestFileSourceByteOrderMarks(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"utf-8 bom", []byte("\xef\xbb\xbfhello\nworld\n")},
		{"utf-16le bom", []byte{0xff, 0xfe, 'h', 0, 'e', 0, 'l', 0, 'l', 0, 'o', 0, '\n', 0, 'w', 0, 'o', 0, 'r', 0, 'l', 0, 'd', 0}},
		{"utf-16be bom", []byte{0xfe, 0xff, 0, 'h', 0, 'e', 0, 'l', 0, 'l', 0, 'o', 0, '\n', 0, 'w', 0, 'o', 0, 'r', 0, 'l', 0, 'd'}},
		{"no bom", []byte("hello\nworld\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFileSource(writeFile(t, tt.data), 0).Open()
			require.NoError(t, err)
			defer r.Close()

			lines, err := collect(t, r)
			require.NoError(t, err)
			assert.Equal(t, []string{"hello", "world"}, lines)
		})
	}
}

func TestFileSourceMissing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.txt"), 0).Open()
	assert.ErrorIs(t, err, fault.ErrSource)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSourceDirectory(t *testing.T) {
	_, err := NewFileSource(t.TempDir(), 0).Open()
	assert.ErrorIs(t, err, fault.ErrSource)
}

func TestFileSourceAllowsConcurrentReaders(t *testing.T) {
	path := writeFile(t, []byte("a\nb\n"))

	first, err := NewFileSource(path, 0).Open()
	require.NoError(t, err)
	defer first.Close()

	second, err := NewFileSource(path, 0).Open()
	require.NoError(t, err)
	defer second.Close()

	lines, err := collect(t, second)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}
