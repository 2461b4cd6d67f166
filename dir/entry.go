package dir

import (
	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/router"
)

// Entry is a path yielded by an iterator, together with the file size when
// the backend reported it during listing.
type Entry struct {
	path    fspath.Path
	size    int64
	hasSize bool
	router  *router.Router
}

// NewEntry creates an entry for p. Only WithRouter applies.
func NewEntry(p fspath.Path, opts ...Option) Entry {
	return Entry{path: p, router: collect(opts).router}
}

func (e Entry) resolver() *router.Router {
	if e.router == nil {
		return router.Default
	}
	return e.router
}

// Path returns the entry's path.
func (e Entry) Path() fspath.Path {
	return e.path
}

// String returns the entry's path in native form.
func (e Entry) String() string {
	return e.path.String()
}

// Status returns the entry's status, following symbolic links.
// A missing entry reports core.FileTypeNotFound along with the error.
func (e Entry) Status() (core.FileStatus, error) {
	st, err := e.resolver().Status(e.path)
	if err != nil {
		return st, errors.PathError("status", err, e.path.String())
	}
	return st, nil
}

// SymlinkStatus returns the entry's status without following a final link.
func (e Entry) SymlinkStatus() (core.FileStatus, error) {
	st, err := e.resolver().SymlinkStatus(e.path)
	if err != nil {
		return st, errors.PathError("symlink status", err, e.path.String())
	}
	return st, nil
}

// FileSize returns the entry's size. The size recorded during listing is
// used when present; otherwise the backend is asked.
func (e Entry) FileSize() (int64, error) {
	if e.hasSize {
		return e.size, nil
	}
	n, err := e.resolver().FileSize(e.path)
	if err != nil {
		return 0, errors.PathError("file size", err, e.path.String())
	}
	return n, nil
}

// Compare orders entries by path.
func (e Entry) Compare(o Entry) int {
	return e.path.Compare(o.path)
}

// Equal reports whether both entries name the same path.
func (e Entry) Equal(o Entry) bool {
	return e.path.Equal(o.path)
}

// Less reports whether e sorts before o.
func (e Entry) Less(o Entry) bool {
	return e.path.Less(o.path)
}
