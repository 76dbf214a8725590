package walk

import (
	"errors"
	"io/fs"

	"github.com/jmgilman/pathops/paths"
)

// Traversal-control sentinels. Callbacks return these to steer the walk;
// SkipSubtree and Terminate alias the io/fs sentinels so callbacks written
// against fs.SkipDir and fs.SkipAll behave identically.
var (
	// SkipSubtree skips the directory it was returned for. Returned from
	// a file visit it skips the rest of the containing directory, the
	// same as fs.SkipDir in filepath.WalkDir.
	SkipSubtree = fs.SkipDir

	// SkipSiblings finishes the current directory early: remaining
	// entries are not visited, but the directory's LeaveDir still runs.
	SkipSiblings = errors.New("skip remaining siblings")

	// Terminate stops the walk immediately. Walk returns nil.
	Terminate = fs.SkipAll
)

// Visitor is the full-signature callback set for Walk. Every field is
// optional.
type Visitor struct {
	// EnterDir runs before a directory's entries are visited. Unset:
	// continue into the directory.
	EnterDir func(p paths.Path, info fs.FileInfo) error

	// VisitFile runs for each non-directory entry, and for directories
	// visited at the depth limit. Unset: continue.
	VisitFile func(p paths.Path, info fs.FileInfo) error

	// LeaveDir runs after a directory's entries have been visited. err is
	// the error from reading the directory, or nil. Unset: propagate err
	// if present, else continue.
	LeaveDir func(p paths.Path, err error) error

	// FileFailed runs when an entry cannot be visited, typically a stat
	// failure. Unset: the failure is re-raised and aborts the walk.
	FileFailed func(p paths.Path, err error) error
}

func (v *Visitor) enterDir(p paths.Path, info fs.FileInfo) error {
	if v.EnterDir == nil {
		return nil
	}
	return v.EnterDir(p, info)
}

func (v *Visitor) visitFile(p paths.Path, info fs.FileInfo) error {
	if v.VisitFile == nil {
		return nil
	}
	return v.VisitFile(p, info)
}

func (v *Visitor) leaveDir(p paths.Path, err error) error {
	if v.LeaveDir == nil {
		return err
	}
	return v.LeaveDir(p, err)
}

func (v *Visitor) fileFailed(p paths.Path, err error) error {
	if v.FileFailed == nil {
		return err
	}
	return v.FileFailed(p, err)
}

// PathVisitor is the simplified callback set: callbacks see only the path.
// Attribute arguments are dropped, and any error encountered while leaving
// a directory or visiting an entry is raised immediately instead of being
// passed to a callback.
type PathVisitor struct {
	// OnDir runs before a directory's entries are visited.
	OnDir func(p paths.Path) error

	// OnFile runs for each non-directory entry.
	OnFile func(p paths.Path) error

	// AfterDir runs after a directory completed without error.
	AfterDir func(p paths.Path) error
}

// Visitor converts the simplified callback set to the full-signature form
// accepted by Walk.
func (pv PathVisitor) Visitor() *Visitor {
	v := &Visitor{}
	if pv.OnDir != nil {
		onDir := pv.OnDir
		v.EnterDir = func(p paths.Path, _ fs.FileInfo) error {
			return onDir(p)
		}
	}
	if pv.OnFile != nil {
		onFile := pv.OnFile
		v.VisitFile = func(p paths.Path, _ fs.FileInfo) error {
			return onFile(p)
		}
	}
	if pv.AfterDir != nil {
		afterDir := pv.AfterDir
		v.LeaveDir = func(p paths.Path, err error) error {
			if err != nil {
				return err
			}
			return afterDir(p)
		}
	}
	// FileFailed stays unset so failures always re-raise.
	return v
}
