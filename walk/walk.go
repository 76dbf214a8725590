package walk

import (
	"errors"
	"io/fs"

	"github.com/jmgilman/pathops/core"
	"github.com/jmgilman/pathops/paths"
)

// Option configures a Walk call.
type Option func(*config)

type config struct {
	maxDepth    int
	followLinks bool
}

// MaxDepth bounds how deep the walk descends. The root is depth zero;
// directories sitting at the limit are handed to VisitFile instead of
// being entered. Negative values mean unbounded, which is the default.
func MaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// FollowLinks makes the walk follow symbolic links into directories. By
// default a symlinked directory is visited as a file, which also keeps the
// walk free of link cycles.
func FollowLinks() Option {
	return func(c *config) { c.followLinks = true }
}

// Walk traverses the tree rooted at the coerced root path, invoking the
// visitor's callbacks for every entry, and returns the starting path once
// traversal completes. Entries within a directory are visited in the
// backend's lexical order.
func Walk(fsys core.FS, root any, v *Visitor, opts ...Option) (paths.Path, error) {
	cfg := config{maxDepth: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if v == nil {
		v = &Visitor{}
	}

	start, err := paths.From(root)
	if err != nil {
		return paths.Path{}, err
	}

	w := &walker{fsys: fsys, visitor: v, cfg: cfg}
	err = w.walk(start, 0)
	if errors.Is(err, SkipSubtree) || errors.Is(err, SkipSiblings) || errors.Is(err, Terminate) {
		err = nil
	}
	return start, err
}

type walker struct {
	fsys    core.FS
	visitor *Visitor
	cfg     config
}

// stat resolves an entry's metadata. Without FollowLinks the walker
// prefers Lstat, when the backend has it, so links are reported as
// themselves rather than their targets.
func (w *walker) stat(p paths.Path) (fs.FileInfo, error) {
	if !w.cfg.followLinks {
		if mfs, ok := w.fsys.(core.MetadataFS); ok {
			return mfs.Lstat(p.String())
		}
	}
	return w.fsys.Stat(p.String())
}

// walk visits one entry and, for directories below the depth limit, its
// children. The returned error may be a control sentinel; the parent loop
// and Walk translate those.
func (w *walker) walk(p paths.Path, depth int) error {
	info, err := w.stat(p)
	if err != nil {
		return w.visitor.fileFailed(p, err)
	}

	atLimit := w.cfg.maxDepth >= 0 && depth >= w.cfg.maxDepth
	if !info.IsDir() || atLimit {
		return w.visitor.visitFile(p, info)
	}

	if err := w.visitor.enterDir(p, info); err != nil {
		if errors.Is(err, SkipSubtree) {
			return nil
		}
		return err
	}

	entries, iterErr := w.fsys.ReadDir(p.String())
	for _, entry := range entries {
		child := p.Resolve(entry.Name())
		cerr := w.walk(child, depth+1)
		if cerr == nil {
			continue
		}
		if errors.Is(cerr, SkipSubtree) {
			// A file has no subtree to skip; treat it as continue.
			continue
		}
		if errors.Is(cerr, SkipSiblings) {
			// Finishes this directory early; LeaveDir still runs.
			break
		}
		return cerr
	}

	err = w.visitor.leaveDir(p, iterErr)
	if errors.Is(err, SkipSubtree) {
		// Pruning is meaningless after the directory was visited.
		return nil
	}
	return err
}
