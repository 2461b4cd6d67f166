package fspath_test

import (
	"sort"
	"testing"

	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/stretchr/testify/assert"
)

func TestLexicallyNormal_POSIX(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"", ""},
		{".", "."},
		{"./", "."},
		{"./a", "a"},
		{"foo/./bar/..", "foo"},
		{"foo/./bar/../", "foo/."},
		{"foo/.///bar/../", "foo/."},
		{"foo/../..//bar/../", "../."},
		{"foo/./bar/.", "foo/bar/."},
		{"foo/..", "."},
		{"../..", "../.."},
		{"a/b/../../..", ".."},
		{"/..", "/"},
		{"/a/../../b", "/b"},
		{"///a//b", "/a/b"},
		{"//net/a/../..", "//net/"},
		{"//net/../x", "//net/x"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := fspath.POSIX.New(tt.path).LexicallyNormal()
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestLexicallyNormal_Windows(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{`c:\a\..\..\b`, `c:\b`},
		{"c:/a/../..", "c:/"},
		{`c:..\a`, `c:..\a`},
		{`c:a\..`, "c:"},
		{`\\net\share\..\..`, `\\net\`},
		{`a\.\b\..\c`, `a\c`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := fspath.Windows.New(tt.path).LexicallyNormal()
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestLexicallyNormal_Idempotent(t *testing.T) {
	inputs := []string{
		"", ".", "..", "/", "/.", "foo/", "a/b/../c/./d/", "../../x", "/a/../../..",
		"//net/a/./b/..", "foo/../..//bar/../", "./././", "a//b//",
	}

	for _, in := range inputs {
		once := fspath.POSIX.New(in).LexicallyNormal()
		twice := once.LexicallyNormal()
		assert.Equal(t, once.String(), twice.String(), "normal(%q)", in)
	}
}

func TestLexicallyRelative(t *testing.T) {
	tests := []struct {
		path, base, want string
	}{
		{"/a/d", "/a/b/c", "../../d"},
		{"/a/b/c", "/a/d", "../b/c"},
		{"a/b/c", "a", "b/c"},
		{"a/b/c", "a/b/c/x/y", "../.."},
		{"a/b/c", "a/b/c", "."},
		{"/a/b", "/a/b", "."},
		{"a/b", "c/d", ""},
		{"/a/b", "c/d", ""},
		{"a/b", "/a/b", ""},
		{"a/b", "a/b/", "."},
		{"a/d", "a/b/../c", "../../../d"},
		{"a", "a/../..", "../.."},
		{"a/b", "a/..", "../b"},
		{"/x/y", "/x/../z", "../../y"},
		{"a/b", "a/./c", "../b"},
		{"//net/x/y", "//net/x", "y"},
	}

	for _, tt := range tests {
		got := fspath.POSIX.New(tt.path).LexicallyRelative(fspath.POSIX.New(tt.base))
		assert.Equal(t, tt.want, got.String(), "%q relative to %q", tt.path, tt.base)
	}
}

func TestLexicallyRelative_JoinProperty(t *testing.T) {
	bases := []string{"/a/b", "a", "//net/share", "x/y/z"}
	rels := []string{"c", "c/d", "c/d/e.txt"}

	for _, b := range bases {
		for _, r := range rels {
			base := fspath.POSIX.New(b)
			p := base.Join(r)
			assert.Equal(t, r, p.LexicallyRelative(base).String(), "%q / %q", b, r)
		}
	}
}

func TestLexicallyProximate(t *testing.T) {
	assert.Equal(t, "a/b", fspath.POSIX.New("a/b").LexicallyProximate(fspath.POSIX.New("c/d")).String())
	assert.Equal(t, "../d", fspath.POSIX.New("/a/d").LexicallyProximate(fspath.POSIX.New("/a/b")).String())
	assert.Equal(t, ".", fspath.POSIX.New("/a").LexicallyProximate(fspath.POSIX.New("/a")).String())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"/foo/", "/foo/.", 0},
		{"///foo//bar", "/foo/bar", 0},
		{"/foo/bar", "a", -1},
		{"a", "/foo/bar", 1},
		{"a/b", "a/b/c", -1},
		{"a/b/c", "a/b", 1},
		{"a/b", "a/c", -1},
		{"", "", 0},
		{"", "a", -1},
	}

	for _, tt := range tests {
		a := fspath.POSIX.New(tt.a)
		b := fspath.POSIX.New(tt.b)
		assert.Equal(t, tt.want, a.Compare(b), "compare(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want == 0, a.Equal(b))
		assert.Equal(t, tt.want < 0, a.Less(b))
	}
}

func TestCompare_Sort(t *testing.T) {
	in := []string{"b", "a/c", "a", "/z", "a/b"}
	ps := make([]fspath.Path, len(in))
	for i, s := range in {
		ps[i] = fspath.POSIX.New(s)
	}

	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
	assert.Equal(t, []string{"/z", "a", "a/b", "a/c", "b"}, strs(ps))
}
