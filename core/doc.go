// Package core defines the filesystem contract consumed by the pathops
// operation packages (fileio, walk) and implemented by providers (billyfs).
//
// The interfaces extend the standard library's fs.FS rather than replacing
// it, so any core.FS can be handed to stdlib helpers such as fs.WalkDir or
// fs.ReadFile. Optional capabilities (metadata, symlinks) are exposed as
// separate interfaces discovered via type assertion, because not every
// backend can honor them.
//
// Example:
//
//	func Stage(fsys core.FS) error {
//	    data, err := fsys.ReadFile("manifest.json")
//	    if err != nil {
//	        return err
//	    }
//	    return fsys.WriteFile("staged/manifest.json", data, 0o644)
//	}
package core
