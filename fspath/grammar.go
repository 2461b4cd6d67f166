package fspath

import "runtime"

// grammar holds the separator and root-name rules of one path style. All
// scanning works on byte offsets into the path string; nothing is cached.
type grammar struct {
	windows bool
}

var (
	posixGrammar   = grammar{}
	windowsGrammar = grammar{windows: true}

	// nativeGrammar is selected once, from the build target.
	nativeGrammar = grammar{windows: runtime.GOOS == "windows"}
)

func (g grammar) isSep(c byte) bool {
	return c == '/' || (g.windows && c == '\\')
}

func (g grammar) preferred() byte {
	if g.windows {
		return '\\'
	}
	return '/'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isDriveSpec reports whether s[i:end] starts with a drive letter and colon.
// Drive specs exist only in the Windows style.
func (g grammar) isDriveSpec(s string, i, end int) bool {
	return g.windows && end-i >= 2 && s[i+1] == ':' && isAlpha(s[i])
}

// isNetName reports whether s[i:] starts with exactly two separators
// followed by a non-separator, the form of a "//net" root name.
func (g grammar) isNetName(s string, i int) bool {
	return len(s)-i > 2 && g.isSep(s[i]) && g.isSep(s[i+1]) && !g.isSep(s[i+2])
}

// isRootSeparator reports whether the separator at i is the root directory
// that follows a drive spec.
func (g grammar) isRootSeparator(s string, i int) bool {
	if g.windows {
		return i == 2 && i < len(s) && g.isSep(s[i]) && g.isDriveSpec(s, 0, i)
	}
	return i == 0 && i < len(s) && g.isSep(s[i])
}

func (g grammar) skipSepFwd(s string, i int) int {
	for i < len(s) && g.isSep(s[i]) {
		i++
	}
	return i
}

// findNext skips separators at i and returns the offset of the separator
// that ends the following element, or len(s).
func (g grammar) findNext(s string, i int) int {
	i = g.skipSepFwd(s, i)
	for i < len(s) && !g.isSep(s[i]) {
		i++
	}
	return i
}

// rootNameEnd returns the length of the root name of s.
func (g grammar) rootNameEnd(s string) int {
	switch {
	case g.isNetName(s, 0):
		return g.findNext(s, 0)
	case g.isDriveSpec(s, 0, len(s)):
		return 2
	}
	return 0
}

// rootDirPos returns the offset at which a root directory would sit. The
// byte there is a separator only if the path has a root directory.
func (g grammar) rootDirPos(s string) int {
	switch {
	case g.isNetName(s, 0):
		return g.findNext(s, 0)
	case g.isDriveSpec(s, 0, len(s)):
		return 2
	case len(s) > 0 && g.isSep(s[0]):
		return 0
	}
	return len(s)
}

// first returns the position and text of the first element of s.
func (g grammar) first(s string) (int, string) {
	n := len(s)
	switch {
	case g.isNetName(s, 0):
		return 0, s[:g.findNext(s, 0)]
	case g.isDriveSpec(s, 0, n):
		return 0, s[:2]
	case n > 0 && g.isSep(s[0]):
		return 0, s[:1]
	}
	return 0, s[:g.findNext(s, 0)]
}

// next returns the element after the one at pos.
func (g grammar) next(s string, pos int, elt string) (int, string) {
	n := len(s)
	if pos >= n {
		return n, ""
	}
	// the root directory alone, or the synthetic "." of a trailing separator
	if pos+1 == n && g.isSep(s[pos]) {
		return n, ""
	}

	// the root directory following a "//net" root name
	if pos == 0 && g.isNetName(s, 0) {
		if i := g.skipSepFwd(s, 0); i != n {
			if i = g.findNext(s, i); i != n {
				return i, s[i : i+1]
			}
		}
	}

	after := pos + len(elt)
	if g.isRootSeparator(s, after) {
		return after, s[after : after+1]
	}

	i := g.skipSepFwd(s, after)
	if i == n && g.isSep(s[n-1]) {
		return n - 1, "."
	}
	return i, s[i:g.findNext(s, i)]
}

// relStart returns the length of the root name and the offset at which
// the relative part of s begins. A root directory consumes one separator.
func (g grammar) relStart(s string) (int, int) {
	rn := g.rootNameEnd(s)
	if rn < len(s) && g.isSep(s[rn]) {
		return rn, rn + 1
	}
	return rn, rn
}

// prev returns the element before position pos. It visits the same
// elements as first and next, in reverse.
func (g grammar) prev(s string, pos int) (int, string) {
	n := len(s)
	if pos <= 0 {
		return 0, ""
	}
	rn, rel := g.relStart(s)
	if pos <= rn {
		return 0, s[:rn]
	}

	// the synthetic "." of a trailing separator
	if pos == n && g.isSep(s[n-1]) && n-1 >= rel {
		return n - 1, "."
	}

	i := pos - 1
	for i >= rel && g.isSep(s[i]) {
		i--
	}
	if i >= rel {
		j := i
		for j > rel && !g.isSep(s[j-1]) {
			j--
		}
		return j, s[j : i+1]
	}

	switch {
	case rel > rn:
		return rn, s[rn:rel]
	case rn > 0:
		return 0, s[:rn]
	}
	return 0, ""
}

// join appends rhs to lhs with one preferred separator between them unless
// either side already supplies a separator or lhs is a bare drive spec.
func (g grammar) join(lhs, rhs string) string {
	switch {
	case rhs == "":
		return lhs
	case lhs == "":
		return rhs
	case g.isSep(lhs[len(lhs)-1]) || g.isSep(rhs[0]):
		return lhs + rhs
	case len(lhs) == 2 && g.isDriveSpec(lhs, 0, 2):
		return lhs + rhs
	}
	return lhs + string(g.preferred()) + rhs
}

// elements returns every element of s in order.
func (g grammar) elements(s string) []string {
	var out []string
	pos, elt := g.first(s)
	for pos < len(s) {
		out = append(out, elt)
		pos, elt = g.next(s, pos, elt)
	}
	return out
}
