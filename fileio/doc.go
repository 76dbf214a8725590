// Package fileio provides the copy, write, read, and delete operations of
// pathops, each taking a core.FS as the platform handle and coercing its
// path arguments through the paths package.
//
// Copy selects its behavior by argument shape, mirroring the layered
// dispatch of the underlying primitives: a reader source copies into a
// path, a writer destination drains a path, and the path-to-path form
// copies whole files. The typed entry points (CopyFromReader, CopyToWriter,
// CopyFile) expose the shape-specific result types directly; the Copy
// veneer wraps them behind a single Result.
//
// Options are functional and resolved once per call. The character encoding
// used by WriteLines and ReadLines is an explicit option (WithEncoding)
// rather than a positional flag, defaulting to UTF-8.
package fileio
