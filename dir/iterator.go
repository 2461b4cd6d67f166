package dir

import (
	"io"
	"io/fs"
	"iter"

	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/router"
)

// Iterator lists the entries of a single directory, excluding "." and "..",
// in the order the backend returns them.
type Iterator struct {
	impl *flatState
}

// flatState is shared by every copy of an Iterator. A nil session marks the
// end of the listing.
type flatState struct {
	dir     fspath.Path
	router  *router.Router
	session core.Session
	current Entry
}

// NewIterator opens the directory p. A missing path or a path that is not a
// directory yields an end iterator and a nil error.
func NewIterator(p fspath.Path, opts ...Option) (Iterator, error) {
	it, err := openFlat(p, collect(opts))
	if err != nil {
		return Iterator{}, errors.PathError("open directory", err, p.String())
	}
	return it, nil
}

// openFlat returns raw backend errors so callers can inspect them before
// converting.
func openFlat(p fspath.Path, o options) (Iterator, error) {
	s, err := o.router.OpenDir(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, core.ErrNotDir) {
			return Iterator{}, nil
		}
		return Iterator{}, err
	}

	st := &flatState{dir: p, router: o.router, session: s}
	if err := st.advance(); err != nil {
		// advance has already closed the session if it hit the end
		if st.session != nil {
			_ = s.Close()
		}
		return Iterator{}, err
	}
	if st.session == nil {
		return Iterator{}, nil
	}
	return Iterator{impl: st}, nil
}

// advance moves to the next entry. On error the state is left unchanged.
func (s *flatState) advance() error {
	for {
		e, err := s.session.Next()
		if err == io.EOF {
			err = s.session.Close()
			s.session = nil
			s.current = Entry{}
			return err
		}
		if err != nil {
			return err
		}
		if e.Name == "." || e.Name == ".." {
			continue
		}
		s.current = Entry{
			path:    s.dir.Join(e.Name),
			size:    e.Size,
			hasSize: e.HasSize,
			router:  s.router,
		}
		return nil
	}
}

func (s *flatState) close() error {
	if s == nil || s.session == nil {
		return nil
	}
	err := s.session.Close()
	s.session = nil
	s.current = Entry{}
	return err
}

// AtEnd reports whether the listing is exhausted.
func (it Iterator) AtEnd() bool {
	return it.impl == nil || it.impl.session == nil
}

// Entry returns the current entry. It returns the zero Entry at the end.
func (it Iterator) Entry() Entry {
	if it.AtEnd() {
		return Entry{}
	}
	return it.impl.current
}

// Increment advances to the next entry. It is a no-op at the end.
func (it Iterator) Increment() error {
	if it.AtEnd() {
		return nil
	}
	if err := it.impl.advance(); err != nil {
		return errors.PathError("directory iterator increment", err, it.impl.dir.String())
	}
	return nil
}

// Equal reports whether two iterators are both at the end, or both
// positioned on the same path.
func (it Iterator) Equal(other Iterator) bool {
	if it.impl == other.impl {
		return true
	}
	if it.AtEnd() || other.AtEnd() {
		return it.AtEnd() && other.AtEnd()
	}
	return it.impl.current.Equal(other.impl.current)
}

// Close releases the backend session. Every copy of the iterator moves to
// the end.
func (it Iterator) Close() error {
	if err := it.impl.close(); err != nil {
		return errors.PathError("close directory", err, it.impl.dir.String())
	}
	return nil
}

// All yields the remaining entries. An Increment failure is yielded once as
// the final element. The iterator is closed when the loop finishes or
// breaks.
func (it Iterator) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		defer it.Close()
		for !it.AtEnd() {
			if !yield(it.Entry(), nil) {
				return
			}
			if err := it.Increment(); err != nil {
				yield(Entry{}, err)
				return
			}
		}
	}
}
