// Package paths provides a canonical path value and the coercions that
// produce it from loosely-typed inputs.
//
// A Path is an immutable, slash-separated, cleaned value. It is never built
// by hand: From coerces a single value (another Path, a file URL, an open
// file handle, or a string) and Join resolves trailing segments against a
// base (a string, a Source, or a rooted filesystem). Types outside this
// package opt into coercion by implementing Source.
//
// Accessors mirror the usual path-object vocabulary: comparison, segment
// prefix/suffix tests, final-segment and parent extraction, normalization,
// relativization, and resolution. All of them delegate to the standard
// path machinery; this package adds no parsing of its own.
//
// Abs and Real are the only operations that touch the host: Abs resolves
// against the working directory syntactically, Real additionally requires
// the target to exist and resolves symbolic links.
package paths
