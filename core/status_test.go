package core_test

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/pathfs/core"
)

func TestStatusFromMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     fs.FileMode
		wantType core.FileType
		wantPerm fs.FileMode
	}{
		{"regular", 0o644, core.FileTypeRegular, 0o644},
		{"directory", fs.ModeDir | 0o755, core.FileTypeDirectory, 0o755},
		{"symlink", fs.ModeSymlink | 0o777, core.FileTypeSymlink, 0o777},
		{"fifo", fs.ModeNamedPipe | 0o600, core.FileTypeFIFO, 0o600},
		{"socket", fs.ModeSocket, core.FileTypeSocket, 0},
		{"char device", fs.ModeDevice | fs.ModeCharDevice, core.FileTypeCharacter, 0},
		{"block device", fs.ModeDevice, core.FileTypeBlock, 0},
		{"irregular", fs.ModeIrregular, core.FileTypeUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := core.StatusFromMode(tt.mode)
			if st.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", st.Type, tt.wantType)
			}
			if st.Perm != tt.wantPerm {
				t.Errorf("Perm = %o, want %o", st.Perm, tt.wantPerm)
			}
		})
	}
}

func TestFileStatus_Predicates(t *testing.T) {
	dir := core.FileStatus{Type: core.FileTypeDirectory}
	if !dir.IsDirectory() || dir.IsRegular() || dir.IsSymlink() || !dir.Exists() {
		t.Errorf("unexpected predicates for %v", dir)
	}

	missing := core.NotFoundStatus()
	if missing.Exists() {
		t.Error("not-found status should not exist")
	}
	if missing.Perm != core.PermsUnknown {
		t.Errorf("Perm = %o, want unknown", missing.Perm)
	}

	if (core.FileStatus{}).Exists() {
		t.Error("zero status should not exist")
	}
}

func TestDirectoryOptions_Has(t *testing.T) {
	opts := core.FollowDirectorySymlink | core.SkipPermissionDenied

	if !opts.Has(core.FollowDirectorySymlink) || !opts.Has(core.SkipPermissionDenied) {
		t.Errorf("expected both flags in %b", opts)
	}
	if core.DirOptionsNone.Has(core.FollowDirectorySymlink) {
		t.Error("none should not have follow")
	}
}

func TestSliceSession(t *testing.T) {
	sess := core.NewSliceSession([]core.DirEntry{{Name: "a"}, {Name: "b", Size: 3, HasSize: true}})

	first, err := sess.Next()
	if err != nil || first.Name != "a" {
		t.Fatalf("first = %v, %v", first, err)
	}
	second, err := sess.Next()
	if err != nil || second.Name != "b" || second.Size != 3 {
		t.Fatalf("second = %v, %v", second, err)
	}
	if _, err := sess.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	if err := sess.Close(); err != nil {
		t.Fatal(err)
	}
	if err := sess.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.Next(); !errors.Is(err, core.ErrClosed) {
		t.Errorf("expected ErrClosed after Close, got %v", err)
	}
}

// TestReexportedErrorsMatchStdlib verifies re-exported errors match stdlib.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
		{"ErrClosed", core.ErrClosed, fs.ErrClosed},
		{"ErrUnsupported", core.ErrUnsupported, errors.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.coreErr, tt.stdlibErr) {
				t.Errorf("%s should match the stdlib sentinel", tt.name)
			}
		})
	}

	if errors.Is(core.ErrNotDir, fs.ErrNotExist) {
		t.Error("ErrNotDir must not match fs.ErrNotExist")
	}
}
