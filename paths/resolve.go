package paths

import (
	"os"
	"path/filepath"

	"github.com/jmgilman/pathops/errors"
)

// RealOption configures Real.
type RealOption func(*realConfig)

type realConfig struct {
	followLinks bool
}

// NoFollowLinks makes Real verify existence without resolving symbolic
// links, so a link itself can be named rather than its target.
func NoFollowLinks() RealOption {
	return func(c *realConfig) {
		c.followLinks = false
	}
}

// Abs coerces v and resolves it against the current working directory.
// The resolution is purely syntactic; the path does not have to exist.
func Abs(v any) (Path, error) {
	p, err := From(v)
	if err != nil {
		return Path{}, err
	}
	abs, err := filepath.Abs(filepath.FromSlash(p.norm()))
	if err != nil {
		return Path{}, errors.Wrapf(err, errors.CodeIO, "cannot make %q absolute", p.String())
	}
	return Path{p: clean(abs)}, nil
}

// Real coerces v, requires it to exist on the host filesystem, and returns
// its canonical absolute form with symbolic links resolved. With
// NoFollowLinks, links are left unresolved and only existence is checked.
// A missing target fails with CodeNotFound; other failures surface as I/O
// errors with the platform cause attached.
func Real(v any, opts ...RealOption) (Path, error) {
	cfg := realConfig{followLinks: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	abs, err := Abs(v)
	if err != nil {
		return Path{}, err
	}
	host := filepath.FromSlash(abs.norm())

	if !cfg.followLinks {
		if _, err := os.Lstat(host); err != nil {
			return Path{}, wrapHostErr(err, abs)
		}
		return abs, nil
	}

	resolved, err := filepath.EvalSymlinks(host)
	if err != nil {
		return Path{}, wrapHostErr(err, abs)
	}
	return Path{p: clean(resolved)}, nil
}

func wrapHostErr(err error, p Path) error {
	if os.IsNotExist(err) {
		return errors.Wrapf(err, errors.CodeNotFound, "%q does not exist", p.String())
	}
	return errors.Wrapf(err, errors.CodeIO, "cannot resolve %q", p.String())
}
