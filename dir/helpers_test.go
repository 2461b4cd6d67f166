package dir

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/go/pathfs/billy"
	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/fstest"
	"github.com/jmgilman/go/pathfs/router"
	"github.com/stretchr/testify/require"
)

const mount = "//<t>"

// sampleTree is the layout most walk tests start from.
var sampleTree = []string{
	"abc/foo/",
	"xyz/a/b/",
	"german.txt",
	"kor.txt",
	"abc/en.txt",
	"abc/foo/fr.txt",
	"abc/foo/es.txt",
}

var mountRoot = fspath.POSIX.New(mount + "/")

// newRouter mounts b at //<t> on a fresh router.
func newRouter(t *testing.T, b core.Backend) *router.Router {
	t.Helper()
	r := router.New()
	require.NoError(t, r.Register(mount, b))
	return r
}

// newTree builds entries in a memory backend mounted at //<t>.
func newTree(t *testing.T, entries ...string) (*router.Router, *billy.MemoryFS) {
	t.Helper()
	mfs := billy.NewMemory()
	require.NoError(t, fstest.BuildTree(mfs, "/", entries...))
	return newRouter(t, mfs), mfs
}

type pathDepth struct {
	Path  string
	Depth int
}

func rel(e Entry) string {
	return e.Path().LexicallyRelative(mountRoot).GenericString()
}

// walk drains it, calling visit (if set) on each entry before advancing.
func walk(t *testing.T, it RecursiveIterator, visit func(RecursiveIterator)) []pathDepth {
	t.Helper()
	var got []pathDepth
	for !it.AtEnd() {
		got = append(got, pathDepth{rel(it.Entry()), it.Depth()})
		if visit != nil {
			visit(it)
		}
		require.NoError(t, it.Increment())
	}
	return got
}

// denyBackend refuses to list the named directories.
type denyBackend struct {
	core.Backend
	denied map[string]bool
}

func (d denyBackend) OpenDir(name string) (core.Session, error) {
	if d.denied[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return d.Backend.OpenDir(name)
}

// scriptBackend serves fixed listings and injects failures into them.
type scriptBackend struct {
	core.Backend
	listings map[string][]core.DirEntry
	failAt   map[string]int
}

func (s scriptBackend) OpenDir(name string) (core.Session, error) {
	entries, ok := s.listings[name]
	if !ok {
		return s.Backend.OpenDir(name)
	}
	fail, ok := s.failAt[name]
	if !ok {
		fail = -1
	}
	return &failingSession{Session: core.NewSliceSession(entries), failAt: fail}, nil
}

// failingSession returns fs.ErrInvalid from the failAt-th call to Next
// (counting from zero) and from every call after it.
type failingSession struct {
	core.Session
	failAt   int
	calls    int
	closed   int
	closeErr error
}

func (f *failingSession) Next() (core.DirEntry, error) {
	n := f.calls
	f.calls++
	if f.failAt >= 0 && n >= f.failAt {
		return core.DirEntry{}, fs.ErrInvalid
	}
	return f.Session.Next()
}

func (f *failingSession) Close() error {
	f.closed++
	if err := f.Session.Close(); err != nil {
		return err
	}
	return f.closeErr
}

// fixedBackend hands out the same session for every directory.
type fixedBackend struct {
	core.Backend
	session core.Session
}

func (f fixedBackend) OpenDir(string) (core.Session, error) {
	return f.session, nil
}
