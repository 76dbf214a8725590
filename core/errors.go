package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs so provider errors compare without imports.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when an operation is performed on a closed file.
	ErrClosed = fs.ErrClosed

	// ErrNotEmpty is returned when a single-entry delete targets a
	// directory that still has children.
	ErrNotEmpty = errors.New("directory not empty")

	// ErrUnsupported is returned when a backend does not support the
	// requested operation, such as symlinks on a backend without them.
	ErrUnsupported = errors.New("operation not supported")
)
