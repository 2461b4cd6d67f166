package core

import (
	"errors"
	"io/fs"
	"syscall"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned by Session.Next after Close.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported is returned when an operation is not supported by the backend,
	// for example symlinks on object storage.
	ErrUnsupported = errors.ErrUnsupported

	// ErrNotDir is returned when a directory operation is applied to a file.
	// It is the errno the operating system reports, so in-memory and real
	// backends match the same sentinel.
	ErrNotDir error = syscall.ENOTDIR

	// ErrIsDir is returned when a file operation is applied to a directory.
	ErrIsDir error = syscall.EISDIR

	// ErrTooManyLinks is returned when symbolic link resolution loops.
	ErrTooManyLinks error = syscall.ELOOP

	// ErrNotEmpty is returned when removing a directory that has entries.
	ErrNotEmpty error = syscall.ENOTEMPTY
)
