package fstest

import (
	"errors"
	"io/fs"
	"slices"
	"testing"

	"github.com/jmgilman/go/pathfs/core"
)

// TestSymlink tests symbolic link handling.
// Skips if the backend doesn't implement core.SymlinkBackend.
// Uses POSIXTestConfig() by default.
func TestSymlink(t *testing.T, b core.MutableBackend) {
	TestSymlinkWithConfig(t, b, POSIXTestConfig())
}

// TestSymlinkWithConfig tests symbolic link handling with behavior configuration.
func TestSymlinkWithConfig(t *testing.T, b core.MutableBackend, _ FSTestConfig) {
	sb, ok := b.(core.SymlinkBackend)
	if !ok {
		t.Skip("SymlinkBackend not supported")
	}

	if err := BuildTree(b, "/ln",
		"target-dir/file.txt",
		"target.txt",
		"file-link -> target.txt",
		"dir-link -> target-dir",
		"broken -> nowhere",
		"loop-a -> loop-b",
		"loop-b -> loop-a",
	); err != nil {
		t.Fatalf("BuildTree(/ln): setup failed: %v", err)
	}

	t.Run("Readlink", func(t *testing.T) {
		target, err := sb.Readlink("/ln/file-link")
		if err != nil {
			t.Fatalf("Readlink(/ln/file-link): got error %v, want nil", err)
		}
		if target != "target.txt" {
			t.Errorf("Readlink(/ln/file-link): got %q, want %q", target, "target.txt")
		}
	})

	t.Run("StatusFollows", func(t *testing.T) {
		st, err := b.Status("/ln/dir-link")
		if err != nil {
			t.Fatalf("Status(/ln/dir-link): got error %v, want nil", err)
		}
		if !st.IsDirectory() {
			t.Errorf("Status(/ln/dir-link): type = %v, want directory", st.Type)
		}
	})

	t.Run("SymlinkStatusDoesNotFollow", func(t *testing.T) {
		for _, name := range []string{"/ln/dir-link", "/ln/file-link", "/ln/broken"} {
			st, err := b.SymlinkStatus(name)
			if err != nil {
				t.Errorf("SymlinkStatus(%s): got error %v, want nil", name, err)
				continue
			}
			if !st.IsSymlink() {
				t.Errorf("SymlinkStatus(%s): type = %v, want symlink", name, st.Type)
			}
		}
	})

	t.Run("BrokenLink", func(t *testing.T) {
		st, err := b.Status("/ln/broken")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Status(/ln/broken): got error %v, want fs.ErrNotExist", err)
		}
		if st.Type != core.FileTypeNotFound {
			t.Errorf("Status(/ln/broken): type = %v, want not-found", st.Type)
		}
	})

	t.Run("OpenThroughLink", func(t *testing.T) {
		s, err := b.OpenDir("/ln/dir-link")
		if err != nil {
			t.Fatalf("OpenDir(/ln/dir-link): got error %v, want nil", err)
		}
		names, err := ReadNames(s)
		if err != nil {
			t.Fatalf("OpenDir(/ln/dir-link): reading entries: %v", err)
		}
		if !slices.Equal(names, []string{"file.txt"}) {
			t.Errorf("OpenDir(/ln/dir-link): got %v, want [file.txt]", names)
		}

		st, err := b.Status("/ln/dir-link/file.txt")
		if err != nil || !st.IsRegular() {
			t.Errorf("Status(/ln/dir-link/file.txt): got (%v, %v), want regular", st.Type, err)
		}
	})

	t.Run("Loop", func(t *testing.T) {
		if _, err := b.Status("/ln/loop-a"); !errors.Is(err, core.ErrTooManyLinks) {
			t.Errorf("Status(/ln/loop-a): got error %v, want core.ErrTooManyLinks", err)
		}
	})
}
