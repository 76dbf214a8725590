package billyfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/pathops/core"
)

// FS adapts a billy.Filesystem to core.FS. The backend kind is recorded at
// construction so callers can introspect it through Type.
type FS struct {
	bfs billy.Filesystem
	typ core.FSType
}

// New wraps an arbitrary billy.Filesystem. Use this for backends other than
// the bundled osfs and memfs, such as a go-git worktree filesystem.
func New(bfs billy.Filesystem, typ core.FSType) *FS {
	return &FS{bfs: bfs, typ: typ}
}

// NewLocal returns a disk-backed filesystem rooted at the filesystem root.
func NewLocal() *FS {
	return &FS{bfs: osfs.New("/"), typ: core.FSTypeLocal}
}

// NewLocalAt returns a disk-backed filesystem rooted at dir. Operations
// cannot escape dir; billy's chroot semantics enforce the boundary.
func NewLocalAt(dir string) *FS {
	return &FS{bfs: osfs.New(dir), typ: core.FSTypeLocal}
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() *FS {
	return &FS{bfs: memfs.New(), typ: core.FSTypeMemory}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type reports the backend kind recorded at construction.
func (f *FS) Type() core.FSType {
	return f.typ
}

// Root returns the root path of the underlying billy filesystem. This makes
// FS usable as the base of a paths.Join call.
func (f *FS) Root() string {
	return f.bfs.Root()
}

// normalize cleans a path and forces forward slashes. Billy handles path
// security underneath.
func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

// dirEntry adapts fs.FileInfo to fs.DirEntry for ReadDir and Walk.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// Stat returns metadata for the named file or directory.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// ReadDir reads the named directory and returns its entries sorted by
// filename. Billy already returns them sorted.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its full contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	bf, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = bf.Close() }()
	return io.ReadAll(bf)
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (f *FS) Create(name string) (core.File, error) {
	name = normalize(name)
	bf, err := f.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// OpenFile opens a file with the given flags and permissions.
func (f *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	bf, err := f.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary and
// truncating it if it exists.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	bf, err := f.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() { _ = bf.Close() }()
	_, err = bf.Write(data)
	return err
}

// Mkdir creates a single directory. Billy only exposes MkdirAll, so the
// existence of the target and its parent are checked first to preserve
// Mkdir semantics.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := f.bfs.Stat(name); err == nil {
		return os.ErrExist
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := f.bfs.Stat(parent); err != nil {
			return err
		}
	}
	return f.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory along with any missing parents.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	return f.bfs.Remove(normalize(name))
}

// RemoveAll removes path and everything beneath it. Billy has no RemoveAll,
// so the tree is removed bottom-up.
func (f *FS) RemoveAll(path string) error {
	path = normalize(path)
	info, err := f.bfs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return f.bfs.Remove(path)
	}

	entries, err := f.bfs.ReadDir(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := f.RemoveAll(normalize(filepath.Join(path, entry.Name()))); err != nil {
			return err
		}
	}
	return f.bfs.Remove(path)
}

// Rename moves oldpath to newpath.
func (f *FS) Rename(oldpath, newpath string) error {
	return f.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Walk walks the tree rooted at root, calling walkFn for each entry
// including root itself. SkipDir and SkipAll are honored with the same
// semantics as filepath.WalkDir.
func (f *FS) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = normalize(root)
	info, err := f.bfs.Stat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = f.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (f *FS) walk(path string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(path, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := f.bfs.ReadDir(path)
	if err != nil {
		if err := walkFn(path, d, err); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		next := normalize(filepath.Join(path, entry.Name()))
		if err := f.walk(next, &dirEntry{info: entry}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// Chroot returns a filesystem scoped to dir. The returned FS keeps the same
// backend type.
func (f *FS) Chroot(dir string) (core.FS, error) {
	sub, err := f.bfs.Chroot(normalize(dir))
	if err != nil {
		return nil, err
	}
	return &FS{bfs: sub, typ: f.typ}, nil
}

// Lstat returns metadata without following symbolic links.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	return f.bfs.Lstat(normalize(name))
}

// Chmod changes the permission bits of the named file. Backends without
// billy.Change support report core.ErrUnsupported.
func (f *FS) Chmod(name string, mode fs.FileMode) error {
	ch, ok := f.bfs.(billy.Change)
	if !ok {
		return core.ErrUnsupported
	}
	return ch.Chmod(normalize(name), mode)
}

// Chtimes changes the access and modification times of the named file.
// Backends without billy.Change support report core.ErrUnsupported.
func (f *FS) Chtimes(name string, atime, mtime time.Time) error {
	ch, ok := f.bfs.(billy.Change)
	if !ok {
		return core.ErrUnsupported
	}
	return ch.Chtimes(normalize(name), atime, mtime)
}

// Symlink creates newname as a symbolic link to oldname.
func (f *FS) Symlink(oldname, newname string) error {
	return f.bfs.Symlink(oldname, normalize(newname))
}

// Readlink returns the target of the named symbolic link.
func (f *FS) Readlink(name string) (string, error) {
	return f.bfs.Readlink(normalize(name))
}

// TempFile creates a new temporary file in dir with the given name prefix,
// opened for reading and writing. An empty dir uses the backend's default
// temporary directory.
func (f *FS) TempFile(dir, prefix string) (core.File, error) {
	bf, err := f.bfs.TempFile(normalize(dir), prefix)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: bf.Name()}, nil
}

// Compile-time interface checks.
var (
	_ core.FS         = (*FS)(nil)
	_ core.Rooted     = (*FS)(nil)
	_ core.MetadataFS = (*FS)(nil)
	_ core.SymlinkFS  = (*FS)(nil)
)
