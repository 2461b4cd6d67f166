package fspath

import "strings"

// Join appends each element with the preferred separator. No separator is
// added when one side already ends or starts with one, or after a bare drive
// spec; an element that starts with a separator does not replace the path.
func (p Path) Join(elems ...string) Path {
	g := p.g()
	s := p.s
	for _, e := range elems {
		s = g.join(s, e)
	}
	return p.with(s)
}

// Append joins q to p as Join does.
func (p Path) Append(q Path) Path {
	return p.Join(q.s)
}

// Concat appends s to the path without adding a separator.
func (p Path) Concat(s string) Path {
	return p.with(p.s + s)
}

// RemoveFilename returns the path without its last element.
func (p Path) RemoveFilename() Path {
	return p.ParentPath()
}

// ReplaceFilename replaces the last element with name.
func (p Path) ReplaceFilename(name string) Path {
	return p.RemoveFilename().Join(name)
}

// ReplaceExtension replaces the extension with ext, adding the dot if ext
// lacks one. An empty ext removes the extension.
func (p Path) ReplaceExtension(ext string) Path {
	s := p.s
	if e := p.Extension().s; e != "" {
		s = s[:len(s)-len(e)]
	}
	if ext != "" && ext[0] != '.' {
		s += "."
	}
	return p.with(s + ext)
}

// MakePreferred rewrites every separator as the preferred separator of the
// path's style.
func (p Path) MakePreferred() Path {
	if !p.g().windows {
		return p
	}
	return p.with(strings.ReplaceAll(p.s, "/", `\`))
}

// Compare orders paths element by element. The first differing element
// decides by string order; a path that is a strict prefix of the other
// sorts first.
func (p Path) Compare(q Path) int {
	a := p.Begin()
	b := q.Begin()
	for !a.AtEnd() && !b.AtEnd() {
		if c := strings.Compare(a.elt, b.elt); c != 0 {
			return c
		}
		a.Next()
		b.Next()
	}
	switch {
	case a.AtEnd() && b.AtEnd():
		return 0
	case a.AtEnd():
		return -1
	}
	return 1
}

// Equal reports whether the paths have the same elements.
func (p Path) Equal(q Path) bool {
	return p.Compare(q) == 0
}

// Less reports whether p sorts before q.
func (p Path) Less(q Path) bool {
	return p.Compare(q) < 0
}

// LexicallyNormal returns the normal form of the path without touching the
// filesystem: "." elements are dropped unless last, ".." removes the
// element before it, and a ".." that would climb above a root directory is
// dropped. A trailing separator survives as a final ".". The normal form of
// a non-empty path that collapses completely is ".".
func (p Path) LexicallyNormal() Path {
	if p.Empty() {
		return p
	}

	elts := p.g().elements(p.s)
	roots := 0
	if p.HasRootName() {
		roots++
	}
	rooted := p.HasRootDirectory()
	if rooted {
		roots++
	}

	out := make([]string, 0, len(elts))
	for i, e := range elts {
		if i < roots {
			out = append(out, e)
			continue
		}
		switch e {
		case ".":
			if i < len(elts)-1 {
				continue
			}
		case "..":
			if len(out) > roots && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
				continue
			}
			if len(out) == roots && rooted {
				continue
			}
		}
		out = append(out, e)
	}

	result := p.with("").Join(out...)
	if result.Empty() {
		return p.with(".")
	}
	return result
}

// LexicallyRelative returns p expressed relative to base, or the empty path
// when the two share no leading element. Identical paths yield ".".
func (p Path) LexicallyRelative(base Path) Path {
	g := p.g()
	a := g.elements(p.s)
	b := base.g().elements(base.s)

	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	if i == 0 {
		return p.with("")
	}
	if i == len(a) && i == len(b) {
		return p.with(".")
	}

	// one ".." per unmatched base element; "." names no directory
	up := 0
	for _, e := range b[i:] {
		if e != "." {
			up++
		}
	}

	s := ""
	for ; up > 0; up-- {
		s = g.join(s, "..")
	}
	for _, e := range a[i:] {
		s = g.join(s, e)
	}
	if s == "" {
		return p.with(".")
	}
	return p.with(s)
}

// LexicallyProximate is LexicallyRelative, falling back to p when no
// relative form exists.
func (p Path) LexicallyProximate(base Path) Path {
	if r := p.LexicallyRelative(base); !r.Empty() {
		return r
	}
	return p
}
