package core

import (
	"io/fs"
)

// FSType represents the underlying type of backend implementation.
type FSType int

const (
	// FSTypeUnknown indicates the backend type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the local operating system filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
	// FSTypeRemote indicates remote storage (e.g., S3).
	FSTypeRemote
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	case FSTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Backend is the storage contract behind every path.
//
// Names passed to a backend are absolute, slash-separated paths in the
// backend's own namespace ("/" is its root). The storage router strips any
// virtual root name before calling a backend.
type Backend interface {
	// Type returns the underlying backend type.
	Type() FSType

	// OpenDir starts a single pass over the entries of the named directory.
	//
	// A missing directory yields an error matching fs.ErrNotExist; a path
	// that exists but is not a directory yields an error matching ErrNotDir.
	OpenDir(name string) (Session, error)

	// Status returns the status of the named path, following symbolic links.
	// A missing path returns a status of type FileTypeNotFound together with
	// an error matching fs.ErrNotExist.
	Status(name string) (FileStatus, error)

	// SymlinkStatus is Status without following a final symbolic link.
	SymlinkStatus(name string) (FileStatus, error)

	// FileSize returns the size in bytes of the named regular file.
	// Directories yield an error matching ErrIsDir.
	FileSize(name string) (int64, error)
}

// Session is one pass over the entries of a directory.
type Session interface {
	// Next returns the next raw entry, or io.EOF when the directory is
	// exhausted. Any other error leaves the session where it was.
	Next() (DirEntry, error)

	// Close releases resources held by the session. It is safe to call more
	// than once; Next after Close returns ErrClosed.
	Close() error
}

// DirEntry is a raw entry yielded by a Session.
type DirEntry struct {
	// Name is the base name of the entry.
	Name string

	// Size is the entry's size in bytes, valid when HasSize is true.
	// Backends that learn the size while listing report it here so callers
	// can skip a separate FileSize lookup.
	Size int64

	// HasSize reports whether Size is known.
	HasSize bool
}

// MutableBackend is a Backend that can create and remove entries.
// Fixture builders and the conformance suite use it to set up trees.
type MutableBackend interface {
	Backend

	// MkdirAll creates a directory and all missing parents.
	MkdirAll(name string, perm fs.FileMode) error

	// WriteFile writes data to the named file, creating it if necessary.
	// Missing parent directories are created.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Remove removes the named file or empty directory.
	Remove(name string) error
}

// SymlinkBackend is implemented by backends that support symbolic links.
// Backends without symlink support do not implement this interface.
type SymlinkBackend interface {
	// Symlink creates link as a symbolic link to target.
	Symlink(target, link string) error

	// Readlink returns the target of the named symbolic link.
	Readlink(name string) (string, error)
}

// ChmodBackend is implemented by backends that can change permission bits.
type ChmodBackend interface {
	// Chmod changes the mode of the named file.
	Chmod(name string, mode fs.FileMode) error
}
