// Package billyfs adapts go-billy filesystems to the core.FS contract.
//
// A single FS type wraps any billy.Filesystem; constructors are provided for
// the two bundled backends, osfs (disk) and memfs (in-memory). The adapter
// keeps the underlying billy.Filesystem reachable through Unwrap so the same
// filesystem can be handed to go-git and other billy consumers.
//
//	fsys := billyfs.NewMemory()
//	if err := fsys.WriteFile("notes.txt", []byte("hi"), 0o644); err != nil {
//	    ...
//	}
package billyfs
