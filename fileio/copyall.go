package fileio

import (
	"context"
	"io/fs"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/pathops/core"
	"github.com/jmgilman/pathops/paths"
)

// CopyAll copies the tree rooted at src to dst on fsys. The walk creates
// directories in traversal order and collects the file pairs; once the walk
// finishes, file payloads are copied on a bounded worker pool
// (WithConcurrency, default 4), so traversal never overlaps a copy.
// ReplaceExisting applies to every file in the tree. Copying a single file
// copies just that file.
//
// Parallel file copies require the backend to tolerate concurrent writes.
// Disk backends do; memfs does not, so pass WithConcurrency(1) when copying
// on an in-memory filesystem to serialize them.
//
// The context cancels the walk between entries and in-flight file copies
// between operations; a cancelled run returns the context error.
func CopyAll(ctx context.Context, fsys core.FS, src, dst any, opts ...Option) error {
	cfg := newConfig(opts)
	source, err := paths.From(src)
	if err != nil {
		return err
	}
	target, err := paths.From(dst)
	if err != nil {
		return err
	}

	info, err := fsys.Stat(source.String())
	if err != nil {
		return err
	}
	if !info.IsDir() {
		_, err := CopyFile(fsys, source, target, opts...)
		return err
	}

	type pair struct {
		src paths.Path
		dst paths.Path
	}
	var files []pair

	err = fsys.Walk(source.String(), func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, err := paths.From(name)
		if err != nil {
			return err
		}
		rel, err := source.Rel(entry)
		if err != nil {
			return err
		}
		dest := target.Resolve(rel.String())

		// Directories are created inline so every parent exists before
		// the file copies beneath it run.
		if d.IsDir() {
			return fsys.MkdirAll(dest.String(), cfg.dirPerm)
		}

		files = append(files, pair{src: entry, dst: dest})
		return nil
	})
	if err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.concurrency)
	for _, f := range files {
		if err := egCtx.Err(); err != nil {
			break
		}
		f := f
		eg.Go(func() error {
			_, err := CopyFile(fsys, f.src, f.dst, opts...)
			return err
		})
	}
	return eg.Wait()
}
