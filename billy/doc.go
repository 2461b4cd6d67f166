// Package billy provides core.Backend implementations on top of go-billy.
//
// NewLocal wraps osfs and exposes the host filesystem; NewMemory wraps memfs
// and is what tests and fixtures mount under virtual roots:
//
//	mem := billy.NewMemory()
//	_ = mem.WriteFile("/docs/readme.txt", []byte("hi"), 0o644)
//	session, err := mem.OpenDir("/docs")
//
// Both types also implement core.MutableBackend and core.SymlinkBackend, and
// Unwrap returns the underlying billy.Filesystem for callers that need it.
//
// # Symbolic links
//
// memfs only resolves a symbolic link in the final path element. MemoryFS
// resolves intermediate links itself, following at most 40 links before
// reporting core.ErrTooManyLinks, so a link to a directory can be walked the
// same way on both backends.
//
// # Thread Safety
//
// LocalFS and MemoryFS are safe for concurrent use by multiple goroutines.
// A Session returned by OpenDir is not.
package billy
