package fspath

import (
	"iter"
	"strings"
)

type styleKind uint8

const (
	styleNative styleKind = iota
	stylePOSIX
	styleWindows
)

// Style selects the separator and root-name rules used to interpret a path.
type Style struct {
	kind styleKind
}

var (
	// Native interprets paths the way the build target does.
	Native = Style{kind: styleNative}

	// POSIX recognizes only '/' as a separator and "//net" root names.
	POSIX = Style{kind: stylePOSIX}

	// Windows also recognizes '\\' as a separator and drive-letter root
	// names such as "c:".
	Windows = Style{kind: styleWindows}
)

// New returns a path interpreted under style s.
func (s Style) New(str string) Path {
	return Path{s: str, style: s.kind}
}

// String returns the name of the style.
func (s Style) String() string {
	switch s.kind {
	case stylePOSIX:
		return "posix"
	case styleWindows:
		return "windows"
	default:
		return "native"
	}
}

// Path is an immutable filesystem path. Its parts are derived from the
// string on demand by the lexical grammar; no filesystem is consulted.
//
// The zero value is the empty path. Paths compare component-wise with
// Compare and Equal, not with ==.
type Path struct {
	s     string
	style styleKind
}

// New returns the native-style path for s.
func New(s string) Path {
	return Path{s: s}
}

func (p Path) g() grammar {
	switch p.style {
	case stylePOSIX:
		return posixGrammar
	case styleWindows:
		return windowsGrammar
	}
	return nativeGrammar
}

// with returns s as a path of the same style as p.
func (p Path) with(s string) Path {
	return Path{s: s, style: p.style}
}

// String returns the path in its native form.
func (p Path) String() string {
	return p.s
}

// GenericString returns the path with every separator written as '/'.
func (p Path) GenericString() string {
	if !p.g().windows {
		return p.s
	}
	return strings.ReplaceAll(p.s, `\`, "/")
}

// Style returns the style the path is interpreted under.
func (p Path) Style() Style {
	return Style{kind: p.style}
}

// Empty reports whether the path is the empty string.
func (p Path) Empty() bool {
	return p.s == ""
}

// RootName returns the drive spec ("c:") or network name ("//net") the
// path starts with, or the empty path.
func (p Path) RootName() Path {
	return p.with(p.s[:p.g().rootNameEnd(p.s)])
}

// HasRootName reports whether RootName is not empty.
func (p Path) HasRootName() bool {
	return p.g().rootNameEnd(p.s) > 0
}

// RootDirectory returns the separator that makes the path absolute within
// its root name, or the empty path.
func (p Path) RootDirectory() Path {
	if !p.HasRootDirectory() {
		return p.with("")
	}
	i := p.g().rootDirPos(p.s)
	return p.with(p.s[i : i+1])
}

// HasRootDirectory reports whether RootDirectory is not empty.
func (p Path) HasRootDirectory() bool {
	g := p.g()
	i := g.rootDirPos(p.s)
	return i < len(p.s) && g.isSep(p.s[i])
}

// RootPath returns RootName followed by RootDirectory.
func (p Path) RootPath() Path {
	return p.with(p.RootName().s + p.RootDirectory().s)
}

// HasRootPath reports whether RootPath is not empty.
func (p Path) HasRootPath() bool {
	return p.HasRootName() || p.HasRootDirectory()
}

// RelativePath returns the path after its root path.
func (p Path) RelativePath() Path {
	g := p.g()
	n := len(p.s)
	if i := g.rootDirPos(p.s); i != n {
		return p.with(p.s[g.skipSepFwd(p.s, i):])
	}
	if n > 0 && !g.isSep(p.s[0]) && !g.isDriveSpec(p.s, 0, n) {
		return p
	}
	return p.with("")
}

// HasRelativePath reports whether RelativePath is not empty.
func (p Path) HasRelativePath() bool {
	return !p.RelativePath().Empty()
}

// ParentPath returns the path without its last element. The parent of a
// path with a single element is empty.
func (p Path) ParentPath() Path {
	if p.Empty() {
		return p
	}
	g := p.g()
	s := p.s
	pos, _ := g.prev(s, len(s))
	_, rel := g.relStart(s)
	if pos < rel {
		return p.with(s[:pos])
	}

	end := pos
	for end > rel && g.isSep(s[end-1]) {
		end--
	}
	return p.with(s[:end])
}

// HasParentPath reports whether ParentPath is not empty.
func (p Path) HasParentPath() bool {
	return !p.ParentPath().Empty()
}

// Filename returns the last element of the path. A trailing separator
// yields ".".
func (p Path) Filename() Path {
	if p.Empty() {
		return p
	}
	_, elt := p.g().prev(p.s, len(p.s))
	return p.with(elt)
}

// HasFilename reports whether Filename is not empty.
func (p Path) HasFilename() bool {
	return !p.Empty()
}

// extensionIndex returns the offset of the extension within name, or -1.
// "." and ".." have none; a leading dot does not start one.
func extensionIndex(name string) int {
	if name == "." || name == ".." {
		return -1
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return -1
	}
	return i
}

// Stem returns the filename without its extension.
func (p Path) Stem() Path {
	name := p.Filename().s
	if i := extensionIndex(name); i >= 0 {
		return p.with(name[:i])
	}
	return p.with(name)
}

// HasStem reports whether Stem is not empty.
func (p Path) HasStem() bool {
	return !p.Stem().Empty()
}

// Extension returns the filename from its last dot on, or the empty path.
// "bar." has extension ".".
func (p Path) Extension() Path {
	name := p.Filename().s
	if i := extensionIndex(name); i >= 0 {
		return p.with(name[i:])
	}
	return p.with("")
}

// HasExtension reports whether Extension is not empty.
func (p Path) HasExtension() bool {
	return !p.Extension().Empty()
}

// IsAbsolute reports whether the path identifies a location without
// reference to a current directory. Windows paths need both a root name and
// a root directory.
func (p Path) IsAbsolute() bool {
	if p.g().windows {
		return p.HasRootName() && p.HasRootDirectory()
	}
	return p.HasRootDirectory()
}

// IsRelative is the negation of IsAbsolute.
func (p Path) IsRelative() bool {
	return !p.IsAbsolute()
}

// Begin returns an iterator positioned at the first element.
func (p Path) Begin() Iterator {
	pos, elt := p.g().first(p.s)
	return Iterator{path: p, pos: pos, elt: elt}
}

// End returns the past-the-end iterator.
func (p Path) End() Iterator {
	return Iterator{path: p, pos: len(p.s)}
}

// Components returns the elements of the path in order.
func (p Path) Components() []Path {
	elts := p.g().elements(p.s)
	out := make([]Path, len(elts))
	for i, e := range elts {
		out[i] = p.with(e)
	}
	return out
}

// All iterates over the elements of the path from first to last.
func (p Path) All() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		for it := p.Begin(); !it.AtEnd(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward iterates over the elements of the path from last to first.
func (p Path) Backward() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		begin := p.Begin()
		it := p.End()
		for !it.Equal(begin) {
			it.Prev()
			if !yield(it.Value()) {
				return
			}
		}
	}
}
