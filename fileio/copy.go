package fileio

import (
	"io"

	"github.com/jmgilman/pathops/core"
	"github.com/jmgilman/pathops/errors"
	"github.com/jmgilman/pathops/paths"
)

// Result describes the outcome of a Copy call. Bytes is populated when
// either endpoint is a stream; Target is populated when the destination is
// a path.
type Result struct {
	Bytes  int64
	Target paths.Path
}

// Copy copies src to dst on fsys, dispatching on the shape of its
// arguments:
//
//   - src is an io.Reader: the stream is copied into the coerced dst path.
//   - dst is an io.Writer: the coerced src path is drained into the stream
//     and copy options are ignored.
//   - otherwise both are coerced to paths and the whole file is copied,
//     honoring ReplaceExisting.
//
// Note that an open file handle is both a stream and path-coercible; the
// stream interpretation wins, matching the layered dispatch of the
// underlying primitives.
func Copy(fsys core.FS, src, dst any, opts ...Option) (Result, error) {
	if r, ok := src.(io.Reader); ok {
		n, err := CopyFromReader(fsys, r, dst, opts...)
		if err != nil {
			return Result{}, err
		}
		target, _ := paths.From(dst)
		return Result{Bytes: n, Target: target}, nil
	}

	if w, ok := dst.(io.Writer); ok {
		n, err := CopyToWriter(fsys, src, w)
		if err != nil {
			return Result{}, err
		}
		return Result{Bytes: n}, nil
	}

	target, err := CopyFile(fsys, src, dst, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Target: target}, nil
}

// CopyFromReader copies everything from r into the coerced dst path and
// returns the number of bytes written. Without ReplaceExisting an existing
// target fails with CodeAlreadyExists.
func CopyFromReader(fsys core.FS, r io.Reader, dst any, opts ...Option) (int64, error) {
	cfg := newConfig(opts)
	target, err := paths.From(dst)
	if err != nil {
		return 0, err
	}
	if err := checkTarget(fsys, target, cfg); err != nil {
		return 0, err
	}

	f, err := fsys.Create(target.String())
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	return io.Copy(f, r)
}

// CopyToWriter drains the coerced src path into w and returns the number
// of bytes copied. Copy options do not apply to this direction.
func CopyToWriter(fsys core.FS, src any, w io.Writer) (int64, error) {
	source, err := paths.From(src)
	if err != nil {
		return 0, err
	}

	f, err := fsys.Open(source.String())
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	return io.Copy(w, f)
}

// CopyFile copies one file at the coerced src path to the coerced dst path
// and returns the target. Without ReplaceExisting an existing target fails
// with CodeAlreadyExists.
func CopyFile(fsys core.FS, src, dst any, opts ...Option) (paths.Path, error) {
	cfg := newConfig(opts)
	source, err := paths.From(src)
	if err != nil {
		return paths.Path{}, err
	}
	target, err := paths.From(dst)
	if err != nil {
		return paths.Path{}, err
	}
	if err := checkTarget(fsys, target, cfg); err != nil {
		return paths.Path{}, err
	}

	in, err := fsys.Open(source.String())
	if err != nil {
		return paths.Path{}, err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.Create(target.String())
	if err != nil {
		return paths.Path{}, err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return paths.Path{}, err
	}
	return target, nil
}

// checkTarget enforces the no-clobber default shared by the copy forms.
func checkTarget(fsys core.FS, target paths.Path, cfg config) error {
	if cfg.replace {
		return nil
	}
	exists, err := fsys.Exists(target.String())
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(core.ErrExist, errors.CodeAlreadyExists,
			"%q already exists and ReplaceExisting was not given", target.String())
	}
	return nil
}
