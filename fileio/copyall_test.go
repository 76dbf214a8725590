package fileio_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/pathops/billyfs"
	"github.com/jmgilman/pathops/fileio"
)

func TestCopyAllTree(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fsys.WriteFile("src/a.txt", []byte("a"), 0o644))
	require.NoError(t, fsys.WriteFile("src/sub/b.txt", []byte("b"), 0o644))
	require.NoError(t, fsys.MkdirAll("src/emptydir", 0o755))

	require.NoError(t, fileio.CopyAll(context.Background(), fsys, "src", "dst",
		fileio.WithConcurrency(1)))

	for name, want := range map[string]string{
		"dst/a.txt":     "a",
		"dst/sub/b.txt": "b",
	} {
		data, err := fsys.ReadFile(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, string(data))
	}

	info, err := fsys.Stat("dst/emptydir")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCopyAllSingleFile(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fsys.WriteFile("one.txt", []byte("1"), 0o644))

	require.NoError(t, fileio.CopyAll(context.Background(), fsys, "one.txt", "two.txt"))

	data, err := fsys.ReadFile("two.txt")
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
}

func TestCopyAllRefusesExistingFiles(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fsys.WriteFile("src/a.txt", []byte("new"), 0o644))
	require.NoError(t, fsys.WriteFile("dst/a.txt", []byte("old"), 0o644))

	err := fileio.CopyAll(context.Background(), fsys, "src", "dst", fileio.WithConcurrency(1))
	assert.Error(t, err)

	// ReplaceExisting propagates to every file in the tree.
	require.NoError(t, fileio.CopyAll(context.Background(), fsys, "src", "dst",
		fileio.ReplaceExisting(), fileio.WithConcurrency(1)))
	data, err := fsys.ReadFile("dst/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyAllConcurrencyBound(t *testing.T) {
	fsys := billyfs.NewMemory()
	for _, name := range []string{"src/a", "src/b", "src/c", "src/d", "src/e"} {
		require.NoError(t, fsys.WriteFile(name, []byte(name), 0o644))
	}

	require.NoError(t, fileio.CopyAll(context.Background(), fsys, "src", "dst",
		fileio.WithConcurrency(1)))

	for _, name := range []string{"dst/a", "dst/b", "dst/c", "dst/d", "dst/e"} {
		ok, err := fsys.Exists(name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

// A wide tree on memfs with a single worker: the walk must finish before
// any payload copy starts, otherwise the copier's writes interleave with
// the walker's reads on a backend that is not goroutine-safe.
func TestCopyAllSerializedOnMemoryBackend(t *testing.T) {
	fsys := billyfs.NewMemory()
	want := map[string]string{}
	for i := 0; i < 400; i++ {
		name := fmt.Sprintf("src/d%02d/f%02d.txt", i%20, i)
		require.NoError(t, fsys.WriteFile(name, []byte(name), 0o644))
		want["dst"+name[len("src"):]] = name
	}

	require.NoError(t, fileio.CopyAll(context.Background(), fsys, "src", "dst",
		fileio.WithConcurrency(1)))

	for name, content := range want {
		data, err := fsys.ReadFile(name)
		require.NoError(t, err, name)
		assert.Equal(t, content, string(data))
	}
}

func TestCopyAllCancelledContext(t *testing.T) {
	fsys := billyfs.NewMemory()
	require.NoError(t, fsys.WriteFile("src/a.txt", []byte("a"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fileio.CopyAll(ctx, fsys, "src", "dst")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCopyAllMissingSource(t *testing.T) {
	fsys := billyfs.NewMemory()

	err := fileio.CopyAll(context.Background(), fsys, "nope", "dst")
	assert.Error(t, err)
}
