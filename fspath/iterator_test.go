package fspath_test

import (
	"testing"

	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/stretchr/testify/assert"
)

func strs(ps []fspath.Path) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.String())
	}
	return out
}

func forward(p fspath.Path) []string {
	var out []string
	for e := range p.All() {
		out = append(out, e.String())
	}
	return out
}

func backward(p fspath.Path) []string {
	out := []string{}
	for e := range p.Backward() {
		out = append(out, e.String())
	}
	return out
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}

func TestIterator_POSIX(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{".", []string{"."}},
		{"/", []string{"/"}},
		{"foo", []string{"foo"}},
		{"a/b/c", []string{"a", "b", "c"}},
		{"foo/", []string{"foo", "."}},
		{"/foo/", []string{"/", "foo", "."}},
		{"//net", []string{"//net"}},
		{"//net/", []string{"//net", "/"}},
		{"//net/foo", []string{"//net", "/", "foo"}},
		{"///foo///", []string{"/", "foo", "."}},
		{"///foo///bar", []string{"/", "foo", "bar"}},
		{"./", []string{".", "."}},
		{"///", []string{"/", "."}},
		{"//net//", []string{"//net", "/", "."}},
		{"//net//a", []string{"//net", "/", "a"}},
		{"foo/./", []string{"foo", ".", "."}},
		{"/.", []string{"/", "."}},
		{"c:/", []string{"c:", "."}},
		{`c:\foo`, []string{`c:\foo`}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := fspath.POSIX.New(tt.path)
			assert.Equal(t, tt.want, forward(p), "forward")
			assert.Equal(t, reversed(tt.want), backward(p), "backward")
			assert.Equal(t, tt.want, nilIfEmpty(strs(p.Components())), "components")
		})
	}
}

func TestIterator_Windows(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"c:", []string{"c:"}},
		{"c:/", []string{"c:", "/"}},
		{"c:foo", []string{"c:", "foo"}},
		{`c:\foo\bar`, []string{"c:", `\`, "foo", "bar"}},
		{"c:/foo/", []string{"c:", "/", "foo", "."}},
		{`\\net\foo`, []string{`\\net`, `\`, "foo"}},
		{"//net/foo", []string{"//net", "/", "foo"}},
		{"c://a", []string{"c:", "/", "a"}},
		{`c:\\a`, []string{"c:", `\`, "a"}},
		{`c:\\\a`, []string{"c:", `\`, "a"}},
		{"prn:", []string{"prn:"}},
		{`foo\bar`, []string{"foo", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := fspath.Windows.New(tt.path)
			assert.Equal(t, tt.want, forward(p), "forward")
			assert.Equal(t, reversed(tt.want), backward(p), "backward")
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestIterator_Bidirectional(t *testing.T) {
	p := fspath.POSIX.New("//net/foo/bar")

	it := p.Begin()
	assert.Equal(t, "//net", it.Value().String())
	assert.Equal(t, 0, it.Offset())

	it.Next()
	it.Next()
	assert.Equal(t, "foo", it.Value().String())
	mid := it

	it.Next()
	assert.Equal(t, "bar", it.Value().String())
	it.Prev()
	assert.True(t, it.Equal(mid))

	it.Next()
	it.Next()
	assert.True(t, it.AtEnd())
	assert.True(t, it.Equal(p.End()))
	assert.True(t, it.Value().Empty())

	it.Next()
	assert.True(t, it.Equal(p.End()), "Next at end stays at end")
}

func TestIterator_EmptyPath(t *testing.T) {
	var p fspath.Path
	assert.True(t, p.Begin().Equal(p.End()))
	assert.True(t, p.Begin().AtEnd())
}

func TestIterator_EqualityNeedsSamePath(t *testing.T) {
	a := fspath.POSIX.New("a/b")
	b := fspath.POSIX.New("a/c")
	assert.False(t, a.Begin().Equal(b.Begin()))
	assert.True(t, a.Begin().Equal(fspath.POSIX.New("a/b").Begin()))
}

func TestComponents_RoundTrip(t *testing.T) {
	inputs := []string{
		"", ".", "/", "foo", "foo/", "/foo/", "//net", "//net/foo", "///foo///bar",
		"a/./b/../c", "./", "foo/./", "/.",
	}

	for _, in := range inputs {
		p := fspath.POSIX.New(in)
		var rebuilt fspath.Path = fspath.POSIX.New("")
		for _, c := range p.Components() {
			rebuilt = rebuilt.Append(c)
		}
		assert.True(t, rebuilt.Equal(p), "%q rebuilt as %q", in, rebuilt.String())
	}
}

func TestIterator_BackwardMatchesForward(t *testing.T) {
	tokens := []string{"", "/", "//", `\`, "a", "c:", "net", ".", ".."}
	for _, style := range []fspath.Style{fspath.POSIX, fspath.Windows} {
		for _, x := range tokens {
			for _, y := range tokens {
				for _, z := range tokens {
					p := style.New(x + y + z)
					want := reversed(forward(p))
					assert.Equal(t, want, backward(p), "%s %q", style, p.String())
				}
			}
		}
	}
}
