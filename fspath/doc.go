// Package fspath provides a portable, purely lexical filesystem path type.
//
// A Path wraps one path string and derives every part of it on demand:
//
//	root-name      "c:" (Windows style) or "//net"
//	root-directory the separator after the root name
//	relative-path  the filename elements that follow
//
// Consecutive separators collapse into one boundary, except that exactly two
// leading separators followed by a name form a network root name. A trailing
// separator produces a final "." element, so "foo/" iterates as {"foo", "."}.
//
// No operation in this package touches the filesystem.
//
// # Styles
//
// New interprets a string with the rules of the build target. POSIX.New and
// Windows.New pick the rules explicitly, which is how Windows drive letters
// can be handled (and tested) on any host:
//
//	p := fspath.Windows.New(`c:\logs\app.txt`)
//	p.RootName()  // "c:"
//	p.Stem()      // "app"
//
// # Iteration
//
// Begin, End, Iterator.Next and Iterator.Prev walk the elements in both
// directions; All and Backward wrap them as range-over-func sequences:
//
//	for elem := range fspath.New("/usr/local/bin").All() {
//	    fmt.Println(elem) // "/", "usr", "local", "bin"
//	}
//
// # Lexical operations
//
// LexicallyNormal removes "." and resolves ".." textually; LexicallyRelative
// and LexicallyProximate express one path relative to another. Compare orders
// paths element by element, so "/foo/" equals "/foo/." and "///a//b" equals
// "/a/b".
package fspath
