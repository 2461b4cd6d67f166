package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/pathfs/core"
)

// TestStatus tests Status and SymlinkStatus on files and directories.
// Uses POSIXTestConfig() by default.
func TestStatus(t *testing.T, b core.MutableBackend) {
	TestStatusWithConfig(t, b, POSIXTestConfig())
}

// TestStatusWithConfig tests Status with behavior configuration.
func TestStatusWithConfig(t *testing.T, b core.MutableBackend, config FSTestConfig) {
	if err := BuildTree(b, "/st", "file.txt", "dir/", "dir/child.txt"); err != nil {
		t.Fatalf("BuildTree(/st): setup failed: %v", err)
	}

	t.Run("Regular", func(t *testing.T) {
		for _, get := range statusFuncs(b) {
			st, err := get.fn("/st/file.txt")
			if err != nil {
				t.Errorf("%s(/st/file.txt): got error %v, want nil", get.name, err)
				continue
			}
			if !st.IsRegular() {
				t.Errorf("%s(/st/file.txt): type = %v, want regular", get.name, st.Type)
			}
		}
	})

	t.Run("Directory", func(t *testing.T) {
		for _, get := range statusFuncs(b) {
			st, err := get.fn("/st/dir")
			if err != nil {
				t.Errorf("%s(/st/dir): got error %v, want nil", get.name, err)
				continue
			}
			if !st.IsDirectory() {
				t.Errorf("%s(/st/dir): type = %v, want directory", get.name, st.Type)
			}
		}
	})

	t.Run("Root", func(t *testing.T) {
		st, err := b.Status("/")
		if err != nil {
			t.Fatalf("Status(/): got error %v, want nil", err)
		}
		if !st.IsDirectory() {
			t.Errorf("Status(/): type = %v, want directory", st.Type)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		for _, get := range statusFuncs(b) {
			st, err := get.fn("/st/nope")
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("%s(/st/nope): got error %v, want fs.ErrNotExist", get.name, err)
			}
			if st.Type != core.FileTypeNotFound {
				t.Errorf("%s(/st/nope): type = %v, want not-found", get.name, st.Type)
			}
			if st.Exists() {
				t.Errorf("%s(/st/nope): Exists() = true, want false", get.name)
			}
		}
	})

	_ = config
}

type statusFunc struct {
	name string
	fn   func(string) (core.FileStatus, error)
}

func statusFuncs(b core.Backend) []statusFunc {
	return []statusFunc{
		{"Status", b.Status},
		{"SymlinkStatus", b.SymlinkStatus},
	}
}

// TestFileSize tests FileSize on files and directories.
// Uses POSIXTestConfig() by default.
func TestFileSize(t *testing.T, b core.MutableBackend) {
	TestFileSizeWithConfig(t, b, POSIXTestConfig())
}

// TestFileSizeWithConfig tests FileSize with behavior configuration.
func TestFileSizeWithConfig(t *testing.T, b core.MutableBackend, _ FSTestConfig) {
	data := []byte("twelve bytes")
	if err := b.WriteFile("/size/data.bin", data, 0o644); err != nil {
		t.Fatalf("WriteFile(/size/data.bin): setup failed: %v", err)
	}
	if err := b.WriteFile("/size/empty.bin", nil, 0o644); err != nil {
		t.Fatalf("WriteFile(/size/empty.bin): setup failed: %v", err)
	}

	n, err := b.FileSize("/size/data.bin")
	if err != nil {
		t.Errorf("FileSize(/size/data.bin): got error %v, want nil", err)
	} else if n != int64(len(data)) {
		t.Errorf("FileSize(/size/data.bin): got %d, want %d", n, len(data))
	}

	n, err = b.FileSize("/size/empty.bin")
	if err != nil || n != 0 {
		t.Errorf("FileSize(/size/empty.bin): got (%d, %v), want (0, nil)", n, err)
	}

	if _, err := b.FileSize("/size"); !errors.Is(err, core.ErrIsDir) {
		t.Errorf("FileSize(/size): got error %v, want core.ErrIsDir", err)
	}

	if _, err := b.FileSize("/size/missing.bin"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("FileSize(/size/missing.bin): got error %v, want fs.ErrNotExist", err)
	}
}
