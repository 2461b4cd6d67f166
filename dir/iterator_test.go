package dir

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/go/pathfs/billy"
	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_EmptyDirectory(t *testing.T) {
	r, _ := newTree(t, "empty/")

	it, err := NewIterator(mountRoot.Join("empty"), WithRouter(r))
	require.NoError(t, err)
	assert.True(t, it.AtEnd())
	assert.True(t, it.Equal(Iterator{}))
}

func TestIterator_ListsEachChildOnce(t *testing.T) {
	r, _ := newTree(t, "d/one.txt", "d/two.txt", "d/three.txt", "d/sub1/", "d/sub2/")

	it, err := NewIterator(mountRoot.Join("d"), WithRouter(r))
	require.NoError(t, err)

	var names []string
	for e, err := range it.All() {
		require.NoError(t, err)
		names = append(names, e.Path().Filename().String())
	}
	assert.ElementsMatch(t, []string{"one.txt", "two.txt", "three.txt", "sub1", "sub2"}, names)
	assert.True(t, it.AtEnd())
}

func TestIterator_MissingOrNotADirectory(t *testing.T) {
	r, _ := newTree(t, "file.txt")

	for _, name := range []string{"nope", "file.txt", "nope/deeper"} {
		it, err := NewIterator(mountRoot.Join(name), WithRouter(r))
		assert.NoError(t, err, name)
		assert.True(t, it.AtEnd(), name)
	}
}

func TestIterator_UnregisteredRoot(t *testing.T) {
	r := newRouter(t, billy.NewMemory())

	it, err := NewIterator(fspath.POSIX.New("//<other>/x"), WithRouter(r))
	require.NoError(t, err)
	assert.True(t, it.AtEnd())
}

func TestIterator_PermissionDenied(t *testing.T) {
	mfs := billy.NewMemory()
	require.NoError(t, mfs.MkdirAll("/locked", 0o755))
	r := newRouter(t, denyBackend{Backend: mfs, denied: map[string]bool{"/locked": true}})

	_, err := NewIterator(mountRoot.Join("locked"), WithRouter(r))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Equal(t, errors.CodePermissionDenied, errors.GetCode(err))

	var fe errors.FilesystemError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, mountRoot.Join("locked").String(), fe.Path1())
}

func TestIterator_SkipsDotEntries(t *testing.T) {
	mfs := billy.NewMemory()
	r := newRouter(t, scriptBackend{Backend: mfs, listings: map[string][]core.DirEntry{
		"/": {{Name: "."}, {Name: "a"}, {Name: ".."}, {Name: "b", Size: 7, HasSize: true}},
	}})

	it, err := NewIterator(mountRoot, WithRouter(r))
	require.NoError(t, err)

	var names []string
	var sizes []int64
	for e, err := range it.All() {
		require.NoError(t, err)
		names = append(names, rel(e))
		if e.hasSize {
			sizes = append(sizes, e.size)
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, []int64{7}, sizes)
}

func TestIterator_OnlyDotEntriesIsEnd(t *testing.T) {
	r := newRouter(t, scriptBackend{Backend: billy.NewMemory(), listings: map[string][]core.DirEntry{
		"/": {{Name: "."}, {Name: ".."}},
	}})

	it, err := NewIterator(mountRoot, WithRouter(r))
	require.NoError(t, err)
	assert.True(t, it.AtEnd())
}

func TestIterator_IncrementFailureKeepsPosition(t *testing.T) {
	r := newRouter(t, scriptBackend{
		Backend:  billy.NewMemory(),
		listings: map[string][]core.DirEntry{"/": {{Name: "a"}, {Name: "b"}}},
		failAt:   map[string]int{"/": 1},
	})

	it, err := NewIterator(mountRoot, WithRouter(r))
	require.NoError(t, err)
	require.Equal(t, "a", rel(it.Entry()))

	err = it.Increment()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrInvalid))
	assert.False(t, it.AtEnd())
	assert.Equal(t, "a", rel(it.Entry()))

	require.NoError(t, it.Close())
	assert.True(t, it.AtEnd())
}

func TestIterator_AllYieldsFailure(t *testing.T) {
	r := newRouter(t, scriptBackend{
		Backend:  billy.NewMemory(),
		listings: map[string][]core.DirEntry{"/": {{Name: "a"}, {Name: "b"}}},
		failAt:   map[string]int{"/": 1},
	})

	it, err := NewIterator(mountRoot, WithRouter(r))
	require.NoError(t, err)

	var seen []string
	var last error
	for e, err := range it.All() {
		if err != nil {
			last = err
			continue
		}
		seen = append(seen, rel(e))
	}
	assert.Equal(t, []string{"a"}, seen)
	assert.True(t, errors.Is(last, fs.ErrInvalid))
	assert.True(t, it.AtEnd(), "All closes the iterator")
}

func TestIterator_Equality(t *testing.T) {
	r, _ := newTree(t, "a.txt", "b.txt")

	a, err := NewIterator(mountRoot, WithRouter(r))
	require.NoError(t, err)
	b, err := NewIterator(mountRoot, WithRouter(r))
	require.NoError(t, err)
	defer a.Close()
	defer b.Close()

	assert.True(t, Iterator{}.Equal(Iterator{}))
	assert.False(t, a.Equal(Iterator{}))
	assert.False(t, Iterator{}.Equal(a))
	assert.True(t, a.Equal(b), "same directory, same first entry")

	require.NoError(t, a.Increment())
	assert.False(t, a.Equal(b))

	require.NoError(t, a.Increment())
	assert.True(t, a.AtEnd())
	assert.True(t, a.Equal(Iterator{}))
	assert.True(t, Iterator{}.Equal(a))
}

func TestIterator_CopiesAlias(t *testing.T) {
	r, _ := newTree(t, "a.txt", "b.txt", "c.txt")

	it, err := NewIterator(mountRoot, WithRouter(r))
	require.NoError(t, err)
	alias := it

	require.NoError(t, it.Increment())
	assert.True(t, alias.Equal(it))
	assert.Equal(t, rel(it.Entry()), rel(alias.Entry()))

	require.NoError(t, alias.Close())
	assert.True(t, it.AtEnd())
	assert.NoError(t, it.Close(), "Close is idempotent")
	assert.NoError(t, it.Increment(), "Increment at end is a no-op")
	assert.Equal(t, Entry{}, it.Entry())
}

func TestIterator_ClosesSessionAtEnd(t *testing.T) {
	s := &failingSession{Session: core.NewSliceSession([]core.DirEntry{{Name: "a"}}), failAt: -1}
	st := &flatState{dir: mountRoot, session: s}

	require.NoError(t, st.advance())
	require.NoError(t, st.advance())
	assert.Nil(t, st.session)
	assert.Equal(t, 1, s.closed)
}

func TestIterator_CloseFailureOnEmptyListing(t *testing.T) {
	s := &failingSession{Session: core.NewSliceSession(nil), failAt: -1, closeErr: fs.ErrClosed}
	r := newRouter(t, fixedBackend{Backend: billy.NewMemory(), session: s})

	it, err := NewIterator(mountRoot, WithRouter(r))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrClosed)
	assert.True(t, it.AtEnd())
	assert.Equal(t, 1, s.closed, "session closed exactly once")
}

func TestIterator_FirstReadFailureClosesSession(t *testing.T) {
	s := &failingSession{Session: core.NewSliceSession([]core.DirEntry{{Name: "a"}}), failAt: 0}
	r := newRouter(t, fixedBackend{Backend: billy.NewMemory(), session: s})

	_, err := NewIterator(mountRoot, WithRouter(r))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrInvalid)
	assert.Equal(t, 1, s.closed)
}
