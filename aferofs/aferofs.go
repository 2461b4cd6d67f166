// Package aferofs adapts any afero.Fs to core.Backend.
//
// afero brings its own family of filesystems (MemMapFs, OsFs, BasePathFs,
// CopyOnWriteFs and others); wrapping one lets it be mounted under a virtual
// root next to the billy and MinIO backends:
//
//	b := aferofs.NewMemory()
//	router.Register("//<scratch>", b)
//
// Symbolic links are reported by SymlinkStatus when the wrapped filesystem
// implements afero.Lstater. Link creation is not exposed because afero's
// path-rewriting filesystems store link targets as host paths.
package aferofs

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/jmgilman/go/pathfs/core"
	"github.com/spf13/afero"
)

// FS wraps an afero.Fs.
type FS struct {
	afs  afero.Fs
	kind core.FSType
}

// New wraps afs, reporting kind from Type.
func New(afs afero.Fs, kind core.FSType) *FS {
	return &FS{afs: afs, kind: kind}
}

// NewMemory wraps a fresh afero.MemMapFs.
func NewMemory() *FS {
	return New(afero.NewMemMapFs(), core.FSTypeMemory)
}

// NewOS wraps afero.OsFs, exposing the host filesystem.
func NewOS() *FS {
	return New(afero.NewOsFs(), core.FSTypeLocal)
}

// NewBasePath exposes the host directory dir as the backend root.
func NewBasePath(dir string) *FS {
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir), core.FSTypeLocal)
}

// Unwrap returns the wrapped afero.Fs.
func (f *FS) Unwrap() afero.Fs {
	return f.afs
}

// Type returns the backend type.
func (f *FS) Type() core.FSType {
	return f.kind
}

func normalize(name string) string {
	if name == "" {
		return "/"
	}
	return filepath.ToSlash(filepath.Clean(name))
}

// OpenDir reads the named directory and returns a session over its entries.
func (f *FS) OpenDir(name string) (core.Session, error) {
	name = normalize(name)

	fi, err := f.afs.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: core.ErrNotDir}
	}

	infos, err := afero.ReadDir(f.afs, name)
	if err != nil {
		return nil, err
	}

	entries := make([]core.DirEntry, 0, len(infos))
	for _, info := range infos {
		e := core.DirEntry{Name: info.Name()}
		if info.Mode().IsRegular() {
			e.Size, e.HasSize = info.Size(), true
		}
		entries = append(entries, e)
	}
	return core.NewSliceSession(entries), nil
}

// Status returns the status of name, following symbolic links.
func (f *FS) Status(name string) (core.FileStatus, error) {
	fi, err := f.afs.Stat(normalize(name))
	return statusOf(fi, err)
}

// SymlinkStatus returns the status of name without following a final
// symbolic link, when the wrapped filesystem can tell the difference.
func (f *FS) SymlinkStatus(name string) (core.FileStatus, error) {
	name = normalize(name)
	if l, ok := f.afs.(afero.Lstater); ok {
		fi, _, err := l.LstatIfPossible(name)
		return statusOf(fi, err)
	}
	return f.Status(name)
}

func statusOf(fi fs.FileInfo, err error) (core.FileStatus, error) {
	switch {
	case err == nil:
		return core.StatusFromMode(fi.Mode()), nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, core.ErrNotDir):
		return core.NotFoundStatus(), err
	default:
		return core.FileStatus{}, err
	}
}

// FileSize returns the size of the named regular file.
func (f *FS) FileSize(name string) (int64, error) {
	name = normalize(name)
	fi, err := f.afs.Stat(name)
	if err != nil {
		return 0, err
	}
	if fi.IsDir() {
		return 0, &fs.PathError{Op: "size", Path: name, Err: core.ErrIsDir}
	}
	return fi.Size(), nil
}

// MkdirAll creates a directory and all missing parents.
func (f *FS) MkdirAll(name string, perm fs.FileMode) error {
	return f.afs.MkdirAll(normalize(name), perm)
}

// WriteFile writes data to the named file, creating parent directories.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	if err := f.afs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(f.afs, name, data, perm)
}

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	return f.afs.Remove(normalize(name))
}

// Chmod changes the mode of the named file.
func (f *FS) Chmod(name string, mode fs.FileMode) error {
	return f.afs.Chmod(normalize(name), mode)
}

var (
	_ core.MutableBackend = (*FS)(nil)
	_ core.ChmodBackend   = (*FS)(nil)
)
