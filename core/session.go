package core

import "io"

// sliceSession is a Session over entries already read into memory.
type sliceSession struct {
	entries []DirEntry
	pos     int
	closed  bool
}

// NewSliceSession returns a Session that yields entries in order.
// Backends whose storage API reads a whole directory at once use it.
func NewSliceSession(entries []DirEntry) Session {
	return &sliceSession{entries: entries}
}

func (s *sliceSession) Next() (DirEntry, error) {
	if s.closed {
		return DirEntry{}, ErrClosed
	}
	if s.pos >= len(s.entries) {
		return DirEntry{}, io.EOF
	}
	e := s.entries[s.pos]
	s.pos++
	return e, nil
}

func (s *sliceSession) Close() error {
	s.closed = true
	s.entries = nil
	return nil
}
