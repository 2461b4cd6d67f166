package dir

import (
	"io/fs"
	"iter"

	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
)

// RecursiveIterator walks a directory tree depth first.
//
// Within each directory the entries that are not directories are produced
// first, straight from the listing. Subdirectories are deferred and produced
// afterwards, each one immediately followed by its own contents unless
// DisableRecursionPending is called while it is current.
type RecursiveIterator struct {
	impl *recState
}

// level holds the subdirectories deferred while listing one directory.
type level struct {
	entries []Entry
	idx     int
}

// recState is shared by every copy of a RecursiveIterator.
//
// stack[0] is a sentinel; the root directory is stack[1]. top indexes the
// level of the directory being listed and is 0 once the walk is over. The
// current entry is the live listing's entry while it is active, otherwise
// stack[top].entries[stack[top].idx].
type recState struct {
	live    Iterator
	stack   []level
	top     int
	pending bool
	opts    options
}

// NewRecursiveIterator opens the tree rooted at p. A missing root, a root
// that is not a directory and an empty root all yield an end iterator and a
// nil error.
func NewRecursiveIterator(p fspath.Path, opts ...Option) (RecursiveIterator, error) {
	o := collect(opts)
	live, err := openFlat(p, o)
	if err != nil {
		return RecursiveIterator{}, errors.PathError("open directory", err, p.String())
	}
	if live.AtEnd() {
		return RecursiveIterator{}, nil
	}

	st := &recState{
		live:    live,
		stack:   make([]level, 2, 8),
		top:     1,
		pending: true,
		opts:    o,
	}
	if err := st.forwardToFirstFile(); err != nil {
		_ = st.live.impl.close()
		return RecursiveIterator{}, errors.PathError("open directory", err, p.String())
	}
	st.settle()
	if st.atEnd() {
		return RecursiveIterator{}, nil
	}
	return RecursiveIterator{impl: st}, nil
}

func (s *recState) atEnd() bool {
	return s == nil || (s.live.AtEnd() && s.top == 0)
}

// forwardToFirstFile moves every directory at the front of the live listing
// onto the current level, stopping at the first entry that is not one.
func (s *recState) forwardToFirstFile() error {
	for !s.live.AtEnd() {
		e := s.live.impl.current
		descend, err := s.isTraversable(e)
		if err != nil {
			return err
		}
		if !descend {
			return nil
		}
		s.stack[s.top].entries = append(s.stack[s.top].entries, e)
		if err := s.live.impl.advance(); err != nil {
			return err
		}
	}
	return nil
}

// isTraversable reports whether e is a directory the walk may descend into.
// Dangling and looping symbolic links are leaves.
func (s *recState) isTraversable(e Entry) (bool, error) {
	st, err := s.opts.router.Status(e.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, core.ErrTooManyLinks) {
			return false, nil
		}
		return false, err
	}
	if !st.IsDirectory() {
		return false, nil
	}
	if s.opts.dirOpts.Has(core.FollowDirectorySymlink) {
		return true, nil
	}
	lst, err := s.opts.router.SymlinkStatus(e.path)
	if err != nil {
		return false, err
	}
	return !lst.IsSymlink(), nil
}

// stepForward positions the walk on the next entry after the live listing
// or the current level moved.
func (s *recState) stepForward() error {
	if err := s.forwardToFirstFile(); err != nil {
		return err
	}
	s.settle()
	return nil
}

// settle pops exhausted levels when the live listing has nothing current.
func (s *recState) settle() {
	if !s.live.AtEnd() {
		return
	}
	if lvl := &s.stack[s.top]; lvl.idx < len(lvl.entries) {
		return
	}
	s.popLevel()
}

// popLevel discards exhausted levels. Leaving a level moves its parent past
// the directory that level listed.
func (s *recState) popLevel() {
	for s.top > 0 && s.stack[s.top].idx >= len(s.stack[s.top].entries) {
		s.top--
		if s.top > 0 {
			s.stack[s.top].idx++
		}
	}
}

// push starts a new level for a directory whose listing is now live.
func (s *recState) push(live Iterator) {
	s.live = live
	s.top++
	if s.top < len(s.stack) {
		s.stack[s.top] = level{entries: s.stack[s.top].entries[:0]}
		return
	}
	s.stack = append(s.stack, level{})
}

func (s *recState) increment() (string, error) {
	descend := s.pending
	s.pending = true

	if !s.live.AtEnd() {
		if err := s.live.impl.advance(); err != nil {
			s.pending = descend
			return s.live.impl.dir.String(), err
		}
		return s.live.impl.dir.String(), s.stepForward()
	}

	lvl := &s.stack[s.top]
	if lvl.idx >= len(lvl.entries) {
		s.popLevel()
		return "", nil
	}

	dir := lvl.entries[lvl.idx].path
	if descend {
		live, err := openFlat(dir, s.opts)
		switch {
		case err == nil:
			s.push(live)
		case errors.Is(err, fs.ErrPermission) && s.opts.dirOpts.Has(core.SkipPermissionDenied):
			lvl.idx++
		default:
			s.pending = descend
			return dir.String(), err
		}
	} else {
		lvl.idx++
	}
	return dir.String(), s.stepForward()
}

// Increment advances to the next entry of the walk. If the current entry is
// a directory and recursion is pending, the walk descends into it. It is a
// no-op at the end.
func (it RecursiveIterator) Increment() error {
	if it.AtEnd() {
		return nil
	}
	where, err := it.impl.increment()
	if err != nil {
		return errors.PathError("recursive directory iterator increment", err, where)
	}
	return nil
}

// Pop abandons the directory being listed and moves to the next entry of
// its parent. Popping at depth 0 ends the walk.
func (it RecursiveIterator) Pop() error {
	if it.AtEnd() {
		return nil
	}
	s := it.impl
	err := s.live.Close()
	s.live = Iterator{}
	s.pending = true
	if s.top > 0 {
		s.top--
		if s.top > 0 {
			s.stack[s.top].idx++
		}
		s.popLevel()
	}
	return err
}

// AtEnd reports whether the walk is over.
func (it RecursiveIterator) AtEnd() bool {
	return it.impl.atEnd()
}

// Entry returns the current entry. It returns the zero Entry at the end.
func (it RecursiveIterator) Entry() Entry {
	if it.AtEnd() {
		return Entry{}
	}
	s := it.impl
	if !s.live.AtEnd() {
		return s.live.impl.current
	}
	lvl := s.stack[s.top]
	return lvl.entries[lvl.idx]
}

// Depth returns how many directories separate the current entry from the
// root: 0 for the root's own entries. It returns -1 at the end.
func (it RecursiveIterator) Depth() int {
	if it.AtEnd() {
		return -1
	}
	return it.impl.top - 1
}

// Options returns the traversal options the iterator was created with.
func (it RecursiveIterator) Options() core.DirectoryOptions {
	if it.impl == nil {
		return core.DirOptionsNone
	}
	return it.impl.opts.dirOpts
}

// RecursionPending reports whether the next Increment may descend into the
// current entry.
func (it RecursiveIterator) RecursionPending() bool {
	return !it.AtEnd() && it.impl.pending
}

// DisableRecursionPending prevents the next Increment from descending into
// the current entry. The flag resets on every Increment.
func (it RecursiveIterator) DisableRecursionPending() {
	if !it.AtEnd() {
		it.impl.pending = false
	}
}

// Equal reports whether two iterators are both at the end, or both
// positioned on the same path.
func (it RecursiveIterator) Equal(other RecursiveIterator) bool {
	if it.impl == other.impl {
		return true
	}
	if it.AtEnd() || other.AtEnd() {
		return it.AtEnd() && other.AtEnd()
	}
	return it.Entry().Equal(other.Entry())
}

// Close releases the open backend session and ends the walk for every copy
// of the iterator.
func (it RecursiveIterator) Close() error {
	if it.impl == nil {
		return nil
	}
	s := it.impl
	err := s.live.Close()
	s.live = Iterator{}
	s.top = 0
	s.stack = s.stack[:1]
	return err
}

// All yields the remaining entries of the walk. Depth and
// DisableRecursionPending may be called on it from inside the loop. An
// Increment failure is yielded once as the final element. The iterator is
// closed when the loop finishes or breaks.
func (it RecursiveIterator) All() iter.Seq2[Entry, error] {
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
