package paths

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/jmgilman/pathops/errors"
)

// Path is an immutable location in a hierarchical filesystem namespace.
// Values are stored cleaned and slash-separated, and the namespace is
// POSIX-shaped: a path is absolute when it begins with "/", and volume
// names are treated as ordinary segments. The zero value is the empty
// path and behaves as ".".
type Path struct {
	p string
}

// clean normalizes a raw string into the stored form: forward slashes,
// redundant segments removed.
func clean(s string) string {
	return path.Clean(filepath.ToSlash(s))
}

// norm returns the stored form, mapping the zero value to ".".
func (p Path) norm() string {
	if p.p == "" {
		return "."
	}
	return p.p
}

// String returns the slash-separated form of the path.
func (p Path) String() string {
	return p.norm()
}

// segments splits the path into its name elements. The root produces no
// segments; neither does ".".
func (p Path) segments() []string {
	s := strings.TrimPrefix(p.norm(), "/")
	if s == "" || s == "." {
		return nil
	}
	return strings.Split(s, "/")
}

// IsAbs reports whether the path is absolute, meaning it begins with "/".
// Windows drive-letter forms like "C:/x" are not absolute under this
// definition.
func (p Path) IsAbs() bool {
	return strings.HasPrefix(p.norm(), "/")
}

// Compare orders two paths lexicographically. It returns a negative value
// when p sorts before other, zero when equal, and a positive value after.
func (p Path) Compare(other Path) int {
	return strings.Compare(p.norm(), other.norm())
}

// StartsWith reports whether p begins with the same name segments as
// prefix. The test is segment-wise: "ab/cd" does not start with "ab/c".
// An absolute prefix only matches an absolute path.
func (p Path) StartsWith(prefix Path) bool {
	if p.IsAbs() != prefix.IsAbs() {
		return false
	}
	ps, qs := p.segments(), prefix.segments()
	if len(qs) > len(ps) {
		return false
	}
	for i := range qs {
		if ps[i] != qs[i] {
			return false
		}
	}
	return true
}

// EndsWith reports whether p ends with the same name segments as suffix.
// An absolute suffix matches only when the whole path is equal to it.
func (p Path) EndsWith(suffix Path) bool {
	if suffix.IsAbs() {
		return p.norm() == suffix.norm()
	}
	ps, qs := p.segments(), suffix.segments()
	if len(qs) > len(ps) {
		return false
	}
	offset := len(ps) - len(qs)
	for i := range qs {
		if ps[offset+i] != qs[i] {
			return false
		}
	}
	return true
}

// Name returns the final segment of the path, or "" when the path has no
// segments (the root or ".").
func (p Path) Name() string {
	segs := p.segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Parent returns the path without its final segment. The second result is
// false when there is no parent: the root, ".", and single-segment relative
// paths have none.
func (p Path) Parent() (Path, bool) {
	s := p.norm()
	d := path.Dir(s)
	if d == s {
		return Path{}, false
	}
	if d == "." && !strings.Contains(s, "/") {
		return Path{}, false
	}
	return Path{p: d}, true
}

// Root returns the root component of the path. The second result is false
// for relative paths, which have no root.
func (p Path) Root() (Path, bool) {
	if !p.IsAbs() {
		return Path{}, false
	}
	return Path{p: "/"}, true
}

// Clean returns the path with redundant segments removed. Paths are kept
// cleaned from construction onward, so this is a fixed point: Clean is
// exposed for callers that want normalization as an explicit step.
func (p Path) Clean() Path {
	return Path{p: clean(p.norm())}
}

// Resolve appends segments to the path. An absolute segment restarts
// resolution from that segment, matching the usual resolve semantics.
func (p Path) Resolve(segments ...string) Path {
	s := p.norm()
	for _, seg := range segments {
		cs := clean(seg)
		if path.IsAbs(cs) {
			s = cs
			continue
		}
		s = path.Join(s, cs)
	}
	return Path{p: s}
}

// Sibling replaces the final segment of the path with name. A path without
// a parent resolves the name on its own.
func (p Path) Sibling(name string) Path {
	if parent, ok := p.Parent(); ok {
		return parent.Resolve(name)
	}
	return Path{p: clean(name)}
}

// Rel computes the relative path from p to target, such that
// p.Resolve(rel) names the same location as target. Both paths must agree
// on absoluteness, and the walk from p to target must not pass through a
// ".." segment of p itself.
func (p Path) Rel(target Path) (Path, error) {
	if p.IsAbs() != target.IsAbs() {
		return Path{}, errors.Newf(errors.CodeInvalidInput,
			"cannot relativize %q against %q: one path is absolute, the other relative",
			target.String(), p.String())
	}

	base, tgt := p.segments(), target.segments()
	i := 0
	for i < len(base) && i < len(tgt) && base[i] == tgt[i] {
		i++
	}
	for _, seg := range base[i:] {
		if seg == ".." {
			return Path{}, errors.Newf(errors.CodeInvalidInput,
				"cannot relativize %q against %q: base has unresolved parent references",
				target.String(), p.String())
		}
	}

	parts := make([]string, 0, len(base)-i+len(tgt)-i)
	for range base[i:] {
		parts = append(parts, "..")
	}
	parts = append(parts, tgt[i:]...)
	if len(parts) == 0 {
		return Path{p: "."}, nil
	}
	return Path{p: path.Join(parts...)}, nil
}
