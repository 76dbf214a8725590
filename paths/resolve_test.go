package paths_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/pathops/errors"
	"github.com/jmgilman/pathops/paths"
)

func TestAbsProducesAbsolute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("drive-letter forms are not absolute in the slash namespace")
	}
	for _, s := range []string{"relative/file.txt", ".", "a"} {
		p, err := paths.Abs(s)
		require.NoError(t, err)
		assert.True(t, p.IsAbs(), "Abs(%q) = %q is not absolute", s, p.String())
	}
}

func TestAbsLeavesAbsoluteAlone(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix-style absolute input")
	}
	p, err := paths.Abs("/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, "/etc/hosts", p.String())
}

func TestRealExisting(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "real.txt")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))

	p, err := paths.Real(name)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.True(t, p.IsAbs())
	}
	assert.Equal(t, "real.txt", p.Name())
}

func TestRealMissingIsNotFound(t *testing.T) {
	_, err := paths.Real(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRealResolvesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	resolved, err := paths.Real(link)
	require.NoError(t, err)

	// The tempdir itself may sit behind a symlink, so compare against the
	// fully resolved target rather than the raw path.
	wantTarget, err := paths.Real(target)
	require.NoError(t, err)
	assert.Equal(t, wantTarget, resolved)
}

func TestRealNoFollowKeepsLink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	p, err := paths.Real(link, paths.NoFollowLinks())
	require.NoError(t, err)
	assert.Equal(t, "link.txt", p.Name())
}

func TestRealNoFollowDanglingLink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), link))

	// The link itself exists, so NoFollowLinks succeeds where the
	// following form reports the missing target.
	_, err := paths.Real(link, paths.NoFollowLinks())
	assert.NoError(t, err)

	_, err = paths.Real(link)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
