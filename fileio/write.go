package fileio

import (
	"golang.org/x/text/transform"

	"github.com/jmgilman/pathops/core"
	"github.com/jmgilman/pathops/paths"
)

// WriteBytes writes data to the coerced dst path. By default the target is
// created or truncated; Append, Exclusive, and WithPerm adjust the open
// mode.
func WriteBytes(fsys core.FS, dst any, data []byte, opts ...Option) error {
	cfg := newConfig(opts)
	target, err := paths.From(dst)
	if err != nil {
		return err
	}

	f, err := fsys.OpenFile(target.String(), cfg.openFlag(), cfg.perm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.Write(data)
	return err
}

// WriteLines writes each line to the coerced dst path followed by a "\n"
// separator, encoding the text with the configured character encoding
// (UTF-8 unless WithEncoding says otherwise). Open-mode options are applied
// the same way as WriteBytes.
func WriteLines(fsys core.FS, dst any, lines []string, opts ...Option) error {
	cfg := newConfig(opts)
	target, err := paths.From(dst)
	if err != nil {
		return err
	}

	f, err := fsys.OpenFile(target.String(), cfg.openFlag(), cfg.perm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := transform.NewWriter(f, cfg.enc.NewEncoder())
	for _, line := range lines {
		if _, err := w.Write([]byte(line)); err != nil {
			_ = w.Close()
			return err
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			_ = w.Close()
			return err
		}
	}
	return w.Close()
}

// CreateDirs creates the coerced directory path along with any missing
// parents and returns it. WithDirPerm adjusts the permission bits.
func CreateDirs(fsys core.FS, v any, opts ...Option) (paths.Path, error) {
	cfg := newConfig(opts)
	target, err := paths.From(v)
	if err != nil {
		return paths.Path{}, err
	}
	if err := fsys.MkdirAll(target.String(), cfg.dirPerm); err != nil {
		return paths.Path{}, err
	}
	return target, nil
}
