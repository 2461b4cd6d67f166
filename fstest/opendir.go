package fstest

import (
	"errors"
	"io"
	"io/fs"
	"slices"
	"testing"

	"github.com/jmgilman/go/pathfs/core"
)

// TestOpenDir tests directory sessions.
// Uses POSIXTestConfig() by default.
func TestOpenDir(t *testing.T, b core.MutableBackend) {
	TestOpenDirWithConfig(t, b, POSIXTestConfig())
}

// TestOpenDirWithConfig tests directory sessions with behavior configuration.
func TestOpenDirWithConfig(t *testing.T, b core.MutableBackend, config FSTestConfig) {
	t.Run("ListsEachChildOnce", func(t *testing.T) {
		testOpenDirChildren(t, b)
	})
	t.Run("EmptyDirectory", func(t *testing.T) {
		testOpenDirEmpty(t, b, config)
	})
	t.Run("Missing", func(t *testing.T) {
		testOpenDirMissing(t, b)
	})
	t.Run("NotADirectory", func(t *testing.T) {
		testOpenDirNotADirectory(t, b)
	})
	t.Run("SizesAndClose", func(t *testing.T) {
		testOpenDirSizes(t, b)
	})
}

func testOpenDirChildren(t *testing.T, b core.MutableBackend) {
	if err := BuildTree(b, "/list", "a.txt", "b/", "b/inner.txt", "c/d/e.txt"); err != nil {
		t.Fatalf("BuildTree(/list): setup failed: %v", err)
	}

	s, err := b.OpenDir("/list")
	if err != nil {
		t.Fatalf("OpenDir(/list): got error %v, want nil", err)
	}
	names, err := ReadNames(s)
	if err != nil {
		t.Fatalf("OpenDir(/list): reading entries: %v", err)
	}

	slices.Sort(names)
	want := []string{"a.txt", "b", "c"}
	if !slices.Equal(names, want) {
		t.Errorf("OpenDir(/list): got %v, want %v", names, want)
	}
}

func testOpenDirEmpty(t *testing.T, b core.MutableBackend, config FSTestConfig) {
	if err := b.MkdirAll("/empty", 0o755); err != nil {
		t.Fatalf("MkdirAll(/empty): setup failed: %v", err)
	}

	s, err := b.OpenDir("/empty")
	if err != nil {
		if config.VirtualDirectories && errors.Is(err, fs.ErrNotExist) {
			return
		}
		t.Fatalf("OpenDir(/empty): got error %v, want nil", err)
	}
	names, err := ReadNames(s)
	if err != nil {
		t.Fatalf("OpenDir(/empty): reading entries: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("OpenDir(/empty): got %v, want no entries", names)
	}
}

func testOpenDirMissing(t *testing.T, b core.MutableBackend) {
	_, err := b.OpenDir("/does-not-exist")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenDir(/does-not-exist): got error %v, want fs.ErrNotExist", err)
	}
}

func testOpenDirNotADirectory(t *testing.T, b core.MutableBackend) {
	if err := b.WriteFile("/plain.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(/plain.txt): setup failed: %v", err)
	}

	_, err := b.OpenDir("/plain.txt")
	if !errors.Is(err, core.ErrNotDir) {
		t.Errorf("OpenDir(/plain.txt): got error %v, want core.ErrNotDir", err)
	}
}

func testOpenDirSizes(t *testing.T, b core.MutableBackend) {
	if err := b.WriteFile("/sized/five.txt", []byte("12345"), 0o644); err != nil {
		t.Fatalf("WriteFile(/sized/five.txt): setup failed: %v", err)
	}

	s, err := b.OpenDir("/sized")
	if err != nil {
		t.Fatalf("OpenDir(/sized): got error %v, want nil", err)
	}

	e, err := s.Next()
	if err != nil {
		t.Fatalf("Next(): got error %v, want nil", err)
	}
	if e.Name != "five.txt" {
		t.Errorf("Next(): name = %q, want %q", e.Name, "five.txt")
	}
	if e.HasSize && e.Size != 5 {
		t.Errorf("Next(): size = %d, want 5", e.Size)
	}

	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() at end: got error %v, want io.EOF", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close(): got error %v, want nil", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() twice: got error %v, want nil", err)
	}
	if _, err := s.Next(); err == nil {
		t.Errorf("Next() after Close: got nil error, want error")
	}
}
