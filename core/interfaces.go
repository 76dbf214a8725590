package core

import (
	"io"
	"io/fs"
	"time"
)

// FSType identifies the kind of backend behind a filesystem.
type FSType int

const (
	// FSTypeUnknown indicates the backend type is unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a human-readable name for the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the full filesystem contract required by the operation packages.
// It embeds fs.FS for stdlib compatibility and composes the read, write,
// manage, and walk operation groups.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	WalkFS

	// Type reports the kind of backend behind this filesystem.
	Type() FSType
}

// ReadFS defines read-only operations. Every provider must support these.
type ReadFS interface {
	// Open opens the named file for reading. The returned file can be
	// type-asserted to File when write access is needed.
	Open(name string) (fs.File, error)

	// Stat returns metadata for the named file or directory.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted
	// by filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its full contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the path is absent.
	Exists(name string) (bool, error)
}

// WriteFS defines mutating operations that create files and directories.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (File, error)

	// OpenFile opens a file with the given flag bitmask (os.O_RDONLY,
	// os.O_CREATE, os.O_APPEND, ...) and permissions. Flag support varies
	// by provider.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it if it already exists.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. It fails if the directory already
	// exists or if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents. It is
	// a no-op if the directory already exists.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines operations that remove or move existing entries.
type ManageFS interface {
	// Remove removes the named file or empty directory. Removing a
	// non-empty directory is an error.
	Remove(name string) error

	// RemoveAll removes path and everything beneath it. A missing path is
	// not an error.
	RemoveAll(path string) error

	// Rename moves oldpath to newpath, replacing a non-directory newpath
	// if it exists.
	Rename(oldpath, newpath string) error
}

// WalkFS defines directory tree traversal in the fs.WalkDirFunc shape.
// The walk package builds its visitor adapters on top of providers that
// also expose ReadFS; WalkFS exists for callers that want the plain
// stdlib-style traversal.
type WalkFS interface {
	// Walk walks the tree rooted at root, calling walkFn for each entry
	// including root itself. Entries within a directory are visited in
	// lexical order.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// Rooted is implemented by filesystems that expose the path of their root.
// The paths package accepts any Rooted value as the base of a segment join.
type Rooted interface {
	// Root returns the root path all operations are resolved against.
	Root() string
}

// File is an open handle supporting both reads and writes.
type File interface {
	fs.File
	io.Writer

	// Name returns the name the file was opened with.
	Name() string
}

// Truncater is an optional File capability for changing a file's size.
type Truncater interface {
	Truncate(size int64) error
}

// Syncer is an optional File capability for flushing contents to stable
// storage. Providers without durable storage implement it as a no-op.
type Syncer interface {
	Sync() error
}

// MetadataFS is an optional filesystem capability for metadata operations.
// The walk package uses Lstat, when available, to avoid following symbolic
// links during traversal.
type MetadataFS interface {
	// Lstat returns metadata without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)

	// Chmod changes the permission bits of the named file.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(name string, atime, mtime time.Time) error
}

// SymlinkFS is an optional filesystem capability for symbolic links.
type SymlinkFS interface {
	// Symlink creates newname as a symbolic link to oldname.
	Symlink(oldname, newname string) error

	// Readlink returns the target of the named symbolic link.
	Readlink(name string) (string, error)
}
