// Package walk adapts partial visitor callbacks onto a depth-first
// directory traversal over a core.FS.
//
// A Visitor carries up to four optional callbacks; anything left unset
// falls back to a safe default, so callers only write the cases they care
// about. Traversal control follows the stdlib idiom: a callback returns
// nil to continue, SkipSubtree to prune, SkipSiblings to finish the
// current directory early, or Terminate to stop the whole walk cleanly.
// Any other error aborts the walk and surfaces to the caller.
//
//	var files []paths.Path
//	_, err := walk.Walk(fsys, "root", &walk.Visitor{
//	    VisitFile: func(p paths.Path, _ fs.FileInfo) error {
//	        files = append(files, p)
//	        return nil
//	    },
//	})
//
// PathVisitor is the simplified flavor for callers that only want the
// visited path and default error propagation.
package walk
