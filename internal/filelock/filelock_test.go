//go:build unix || windows

package filelock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T, path string, flag int) *os.File {
	t.Helper()
	f, err := os.OpenFile(path, flag, 0o644)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestSharedLocksCoexist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	a := open(t, path, os.O_RDONLY)
	b := open(t, path, os.O_RDONLY)
	require.NoError(t, Shared(a))
	assert.NoError(t, Shared(b))
}

func TestExclusiveBlocksShared(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")

	w := open(t, path, os.O_WRONLY|os.O_CREATE)
	r := open(t, path, os.O_RDONLY)
	require.NoError(t, Exclusive(w))

	err := Shared(r)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, Unlock(w))
	assert.NoError(t, Shared(r))
}

func TestSharedBlocksExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	r := open(t, path, os.O_RDONLY)
	w := open(t, path, os.O_WRONLY)
	require.NoError(t, Shared(r))
	assert.ErrorIs(t, Exclusive(w), ErrLocked)
}
