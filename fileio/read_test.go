package fileio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jmgilman/pathops/billyfs"
	"github.com/jmgilman/pathops/fileio"
)

func TestReadLines(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fsys.WriteFile("lines.txt", []byte("a\nb\n"), 0o644))

	lines, err := fileio.ReadLines(fsys, "lines.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestReadLinesRoundTrip(t *testing.T) {
	fsys := billyfs.NewMemory()
	want := []string{"first", "", "third"}

	require.NoError(t, fileio.WriteLines(fsys, "rt.txt", want))

	got, err := fileio.ReadLines(fsys, "rt.txt")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadLinesExplicitEncoding(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fsys.WriteFile("latin1.txt", []byte{'h', 0xe9, '\n'}, 0o644))

	lines, err := fileio.ReadLines(fsys, "latin1.txt", fileio.WithEncoding(charmap.ISO8859_1))
	require.NoError(t, err)
	assert.Equal(t, []string{"hé"}, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	fsys := billyfs.NewMemory()

	_, err := fileio.ReadLines(fsys, "nope.txt")
	assert.Error(t, err)
}
