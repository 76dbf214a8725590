package fileio

import (
	"github.com/jmgilman/pathops/core"
	"github.com/jmgilman/pathops/errors"
	"github.com/jmgilman/pathops/paths"
)

// Delete removes the single file or empty directory at the coerced path.
// A missing target fails with CodeNotFound and a directory that still has
// children fails with CodeNotEmpty; anything else surfaces the backend
// error unmodified.
func Delete(fsys core.FS, v any) error {
	target, err := paths.From(v)
	if err != nil {
		return err
	}
	name := target.String()

	info, err := fsys.Stat(name)
	if err != nil {
		if errors.Is(err, core.ErrNotExist) {
			return errors.Wrapf(err, errors.CodeNotFound, "%q does not exist", name)
		}
		return err
	}

	if info.IsDir() {
		entries, err := fsys.ReadDir(name)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			return errors.Wrapf(core.ErrNotEmpty, errors.CodeNotEmpty,
				"%q has %d entries", name, len(entries))
		}
	}

	return fsys.Remove(name)
}
