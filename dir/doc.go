// Package dir enumerates directory entries through the storage router.
//
// Iterator lists one directory. RecursiveIterator walks a whole tree depth
// first: at each level the non-directory entries come first, in backend
// order, followed by the subdirectories, each one visited before its
// children.
//
//	it, err := dir.NewRecursiveIterator(fspath.New("//<assets>/"))
//	if err != nil {
//	    return err
//	}
//	defer it.Close()
//
//	for ; !it.AtEnd(); err = it.Increment() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(it.Depth(), it.Entry().Path())
//	}
//
// Opening a path that does not exist, or is not a directory, produces an
// iterator that is already at the end. Failures after that are returned by
// Increment; the iterator stays where the failing step left it.
//
// # Aliasing
//
// Iterator values are handles to shared traversal state. Copies advance
// together, and Close on one copy ends them all. The zero value is the end
// iterator, and every end iterator is Equal to every other.
//
// # Errors
//
// Backends return plain errors (io/fs sentinels, errnos). Exported
// operations convert them with errors.PathError so the result carries the
// failing path and an errors.ErrorCode, while errors.Is still sees the
// original cause.
package dir
