package fspath

// Iterator walks the elements of a Path in either direction. It is a plain
// value: copies advance independently.
//
// An iterator is positioned by byte offset and recomputes its element from
// the path on every step. Two iterators are equal when they walk the same
// path string and sit at the same offset.
type Iterator struct {
	path Path
	pos  int
	elt  string
}

// Value returns the current element. Past the end it returns the empty path.
func (it Iterator) Value() Path {
	return it.path.with(it.elt)
}

// Offset returns the byte offset of the current element within the path.
func (it Iterator) Offset() int {
	return it.pos
}

// AtEnd reports whether the iterator is past the last element.
func (it Iterator) AtEnd() bool {
	return it.pos >= len(it.path.s)
}

// Next advances to the following element. It is a no-op at the end.
func (it *Iterator) Next() {
	it.pos, it.elt = it.path.g().next(it.path.s, it.pos, it.elt)
}

// Prev moves back to the preceding element. At the beginning the element
// becomes empty and the position stays put.
func (it *Iterator) Prev() {
	it.pos, it.elt = it.path.g().prev(it.path.s, it.pos)
}

// Equal reports whether both iterators walk the same path string and sit at
// the same offset.
func (it Iterator) Equal(other Iterator) bool {
	return it.path.s == other.path.s && it.pos == other.pos
}
