package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestGatherPaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.html"))
	touch(t, filepath.Join(dir, "nested", "b.HTM"))
	touch(t, filepath.Join(dir, "notes.txt"))

	assert := assert.New(t)
	paths, err := GatherPaths(dir, []string{".html", ".htm"}, 0)
	require.NoError(t, err)
	assert.ElementsMatch([]string{filepath.Join(dir, "a.html"), filepath.Join(dir, "nested", "b.HTM")}, paths)

	paths, err = GatherPaths(dir, []string{".html", ".htm"}, 1)
	require.NoError(t, err)
	assert.Len(paths, 1)

	single := filepath.Join(dir, "notes.txt")
	paths, err = GatherPaths(single, []string{".html"}, 0)
	require.NoError(t, err)
	assert.Equal([]string{single}, paths)

	_, err = GatherPaths(filepath.Join(dir, "missing"), nil, 0)
	assert.Error(err)
}

func TestRecreateOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	touch(t, filepath.Join(dir, "stale.chordpro"))

	require.NoError(t, RecreateOutputDir(dir))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSafeFileName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("AC_DC - Back In Black", SafeFileName("AC/DC - Back In Black"))
	assert.Equal("What_", SafeFileName("What?"))
	assert.Equal("", SafeFileName(" .. "))
}

func TestNumberHelpers(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(2), Min(uint8(7), uint8(2)))
	assert.Equal([]string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}
