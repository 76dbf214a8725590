package fileio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/jmgilman/pathops/billyfs"
	"github.com/jmgilman/pathops/fileio"
)

func TestWriteBytes(t *testing.T) {
	fsys := billyfs.NewMemory()

	require.NoError(t, fileio.WriteBytes(fsys, "raw.bin", []byte{0xde, 0xad}))

	data, err := fsys.ReadFile("raw.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, data)
}

func TestWriteBytesTruncatesByDefault(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fileio.WriteBytes(fsys, "f.bin", []byte("a long payload")))
	require.NoError(t, fileio.WriteBytes(fsys, "f.bin", []byte("short")))

	data, err := fsys.ReadFile("f.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), data)
}

func TestWriteBytesAppend(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fileio.WriteBytes(fsys, "log.txt", []byte("one\n")))
	require.NoError(t, fileio.WriteBytes(fsys, "log.txt", []byte("two\n"), fileio.Append()))

	data, err := fsys.ReadFile("log.txt")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestWriteBytesExclusive(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fileio.WriteBytes(fsys, "once.txt", []byte("x"), fileio.Exclusive()))

	err := fileio.WriteBytes(fsys, "once.txt", []byte("y"), fileio.Exclusive())
	assert.Error(t, err)
}

// TestWriteLinesDefaultEncoding verifies lines land as UTF-8 with a "\n"
// after every line, including the last.
func TestWriteLinesDefaultEncoding(t *testing.T) {
	fsys := billyfs.NewMemory()

	require.NoError(t, fileio.WriteLines(fsys, "lines.txt", []string{"a", "b"}))

	data, err := fsys.ReadFile("lines.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestWriteLinesExplicitEncoding(t *testing.T) {
	fsys := billyfs.NewMemory()

	require.NoError(t, fileio.WriteLines(fsys, "latin1.txt", []string{"héllo"},
		fileio.WithEncoding(charmap.ISO8859_1)))

	data, err := fsys.ReadFile("latin1.txt")
	require.NoError(t, err)
	// é is a single 0xE9 byte in Latin-1, two bytes in UTF-8.
	assert.Equal(t, []byte{'h', 0xe9, 'l', 'l', 'o', '\n'}, data)
}

func TestWriteLinesEncodingWithOpenMode(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fileio.WriteLines(fsys, "mix.txt", []string{"first"}))

	// Encoding and open-mode options combine freely.
	require.NoError(t, fileio.WriteLines(fsys, "mix.txt", []string{"second"},
		fileio.WithEncoding(unicode.UTF8), fileio.Append()))

	data, err := fsys.ReadFile("mix.txt")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestCreateDirs(t *testing.T) {
	fsys := billyfs.NewMemory()

	p, err := fileio.CreateDirs(fsys, "a/b/c")
	require.NoError(t, err)
	assert.Equal(t, "a/b/c", p.String())

	info, err := fsys.Stat("a/b/c")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Existing directories are fine.
	_, err = fileio.CreateDirs(fsys, "a/b/c")
	assert.NoError(t, err)
}
