package paths

import (
	"net/url"
	"strings"

	"github.com/jmgilman/pathops/core"
	"github.com/jmgilman/pathops/errors"
)

// Source is the capability a type implements to opt into unary coercion.
// Any Source value is accepted wherever a path-like input is expected.
type Source interface {
	// ToPath converts the value to a canonical path.
	ToPath() (Path, error)
}

// fileHandle matches open file handles without naming a concrete type:
// *os.File, core.File, and billy files all carry a name and are readable.
type fileHandle interface {
	Name() string
	Read(p []byte) (int, error)
}

// From coerces a single value to a Path. Accepted inputs:
//
//   - Path: returned unchanged.
//   - Source: converted through its ToPath method.
//   - *url.URL / url.URL: the path of a file-scheme URL.
//   - an open file handle (anything with Name and Read): its name.
//   - string: parsed and cleaned.
//
// Any other type fails with CodeUnsupportedInput.
func From(v any) (Path, error) {
	switch x := v.(type) {
	case Path:
		return x, nil
	case Source:
		return x.ToPath()
	case *url.URL:
		return fromURL(x)
	case url.URL:
		return fromURL(&x)
	case string:
		return Path{p: clean(x)}, nil
	}
	if fh, ok := v.(fileHandle); ok {
		return Path{p: clean(fh.Name())}, nil
	}
	return Path{}, errors.Newf(errors.CodeUnsupportedInput, "cannot coerce %T to a path", v)
}

func fromURL(u *url.URL) (Path, error) {
	if !strings.EqualFold(u.Scheme, "file") {
		return Path{}, errors.Newf(errors.CodeInvalidInput,
			"cannot coerce URL with scheme %q to a path, only file URLs are supported", u.Scheme)
	}
	return Path{p: clean(u.Path)}, nil
}

// Join coerces base to a Path and resolves the trailing segments against
// it. base may be a string, a Source, or a rooted filesystem (core.Rooted),
// in which case resolution starts at the filesystem's root.
//
// A Path base is rejected: resolving segments against an already-coerced
// Path should use Path.Resolve, and accepting both shapes here has proven
// to hide bugs where the wrong overload is picked.
func Join(base any, segments ...string) (Path, error) {
	var p Path
	switch x := base.(type) {
	case Path:
		return Path{}, errors.New(errors.CodeUnsupportedInput,
			"ambiguous join base: use Path.Resolve to append segments to a Path")
	case Source:
		sp, err := x.ToPath()
		if err != nil {
			return Path{}, err
		}
		p = sp
	case string:
		p = Path{p: clean(x)}
	default:
		r, ok := base.(core.Rooted)
		if !ok {
			return Path{}, errors.Newf(errors.CodeUnsupportedInput,
				"cannot coerce %T to a join base", base)
		}
		p = Path{p: clean(r.Root())}
	}
	return p.Resolve(segments...), nil
}

// Compare coerces both operands and orders them lexicographically.
func Compare(a, b any) (int, error) {
	pa, err := From(a)
	if err != nil {
		return 0, err
	}
	pb, err := From(b)
	if err != nil {
		return 0, err
	}
	return pa.Compare(pb), nil
}

// Rel coerces both operands and computes the relative path from base to
// target.
func Rel(base, target any) (Path, error) {
	pb, err := From(base)
	if err != nil {
		return Path{}, err
	}
	pt, err := From(target)
	if err != nil {
		return Path{}, err
	}
	return pb.Rel(pt)
}
