package billyfs

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/pathops/core"
)

// File wraps billy.File to satisfy both core.File and fs.File. The name is
// captured at open time because billy backends disagree on the format of
// File.Name, and the filesystem reference is kept because billy files have
// no Stat of their own.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read delegates to the underlying billy.File.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write delegates to the underlying billy.File.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close delegates to the underlying billy.File.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat asks the owning filesystem for metadata, since billy files do not
// carry a Stat method.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Seek delegates to the underlying billy.File.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Truncate delegates to the underlying billy.File.
func (f *File) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Sync flushes to stable storage when the backend supports it and is a
// no-op otherwise (memfs has nothing to flush).
func (f *File) Sync() error {
	if s, ok := f.file.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.File      = (*File)(nil)
	_ fs.File        = (*File)(nil)
	_ io.Seeker      = (*File)(nil)
	_ core.Truncater = (*File)(nil)
	_ core.Syncer    = (*File)(nil)
)
