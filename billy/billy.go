package billy

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/pathfs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
type LocalFS struct {
	backend
	root string
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	backend
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots a local filesystem at dir instead of "/".
// It has no effect on NewMemory.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
// The returned filesystem is rooted at the filesystem root ("/") unless
// WithRoot says otherwise.
func NewLocal(opts ...Option) *LocalFS {
	cfg := config{root: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &LocalFS{
		backend: backend{bfs: osfs.New(cfg.root), kind: core.FSTypeLocal},
		root:    cfg.root,
	}
}

// Root returns the host directory the filesystem is rooted at.
func (lfs *LocalFS) Root() string {
	return lfs.root
}

// Chmod changes the mode of the named file on the host filesystem.
func (lfs *LocalFS) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(filepath.Join(lfs.root, filepath.FromSlash(normalize(name))), mode)
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem initially holds only its root directory.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{backend{bfs: memfs.New(), kind: core.FSTypeMemory, resolveLinks: true}}
}

// backend holds the operations shared by LocalFS and MemoryFS.
type backend struct {
	bfs  billy.Filesystem
	kind core.FSType

	// resolveLinks is set for filesystems that do not follow symbolic links
	// in intermediate path elements.
	resolveLinks bool
}

// Unwrap returns the underlying billy.Filesystem.
func (b *backend) Unwrap() billy.Filesystem {
	return b.bfs
}

// Type returns the backend type.
func (b *backend) Type() core.FSType {
	return b.kind
}

// normalize converts paths to use forward slashes consistently.
func normalize(name string) string {
	if name == "" {
		return "/"
	}
	return filepath.ToSlash(filepath.Clean(name))
}

// pathErr attaches op and name to err unless it already names a path.
func pathErr(op, name string, err error) error {
	if err == nil {
		return nil
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

func (b *backend) stat(name string) (fs.FileInfo, error) {
	resolved, err := b.resolve(name, true)
	if err != nil {
		return nil, err
	}
	return b.bfs.Stat(resolved)
}

func (b *backend) lstat(name string) (fs.FileInfo, error) {
	resolved, err := b.resolve(name, false)
	if err != nil {
		return nil, err
	}
	return b.bfs.Lstat(resolved)
}

// OpenDir reads the named directory and returns a session over its entries.
// Entries come back sorted by name.
func (b *backend) OpenDir(name string) (core.Session, error) {
	name = normalize(name)

	fi, err := b.stat(name)
	if err != nil {
		return nil, pathErr("open", name, err)
	}
	if !fi.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: core.ErrNotDir}
	}

	resolved, err := b.resolve(name, true)
	if err != nil {
		return nil, pathErr("open", name, err)
	}
	infos, err := b.bfs.ReadDir(resolved)
	if err != nil {
		return nil, pathErr("open", name, err)
	}

	entries := make([]core.DirEntry, 0, len(infos))
	for _, info := range infos {
		e := core.DirEntry{Name: info.Name()}
		if info.Mode().IsRegular() {
			e.Size = info.Size()
			e.HasSize = true
		}
		entries = append(entries, e)
	}
	return core.NewSliceSession(entries), nil
}

// Status returns the status of name, following symbolic links.
func (b *backend) Status(name string) (core.FileStatus, error) {
	name = normalize(name)
	fi, err := b.stat(name)
	return statusOf(fi, pathErr("stat", name, err), err)
}

// SymlinkStatus returns the status of name without following a final
// symbolic link.
func (b *backend) SymlinkStatus(name string) (core.FileStatus, error) {
	name = normalize(name)
	fi, err := b.lstat(name)
	return statusOf(fi, pathErr("lstat", name, err), err)
}

func statusOf(fi fs.FileInfo, wrapped, err error) (core.FileStatus, error) {
	if err == nil {
		return core.StatusFromMode(fi.Mode()), nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, core.ErrNotDir) {
		return core.NotFoundStatus(), wrapped
	}
	return core.FileStatus{}, wrapped
}

// FileSize returns the size of the named regular file.
func (b *backend) FileSize(name string) (int64, error) {
	name = normalize(name)
	fi, err := b.stat(name)
	if err != nil {
		return 0, pathErr("size", name, err)
	}
	switch {
	case fi.IsDir():
		return 0, &fs.PathError{Op: "size", Path: name, Err: core.ErrIsDir}
	case !fi.Mode().IsRegular():
		return 0, &fs.PathError{Op: "size", Path: name, Err: core.ErrUnsupported}
	}
	return fi.Size(), nil
}

// MkdirAll creates a directory and all missing parents.
func (b *backend) MkdirAll(name string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(normalize(name), perm)
}

// WriteFile writes data to the named file, creating parent directories.
func (b *backend) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	if dir := path.Dir(name); dir != "/" && dir != "." {
		if err := b.bfs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return util.WriteFile(b.bfs, name, data, perm)
}

// Remove removes the named file or empty directory.
func (b *backend) Remove(name string) error {
	return b.bfs.Remove(normalize(name))
}

// Symlink creates link as a symbolic link to target. The target is stored
// as given.
func (b *backend) Symlink(target, link string) error {
	return b.bfs.Symlink(target, normalize(link))
}

// Readlink returns the target of the named symbolic link.
func (b *backend) Readlink(name string) (string, error) {
	target, err := b.bfs.Readlink(normalize(name))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(target), nil
}

// Chmod changes the mode of the named file when the underlying filesystem
// supports it.
func (b *backend) Chmod(name string, mode fs.FileMode) error {
	ch, ok := b.bfs.(billy.Change)
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
	}
	return ch.Chmod(normalize(name), mode)
}

var (
	_ core.MutableBackend = (*LocalFS)(nil)
	_ core.SymlinkBackend = (*LocalFS)(nil)
	_ core.ChmodBackend   = (*LocalFS)(nil)
	_ core.MutableBackend = (*MemoryFS)(nil)
	_ core.SymlinkBackend = (*MemoryFS)(nil)
)
