package errors

import (
	"context"
	stderrors "errors"
	"io/fs"
	"syscall"
)

// Classify derives the filesystem ErrorCode of a raw error returned by a
// backend. It is the single mapping from operating system and io/fs errors to
// the taxonomy; PathError and every iterator operation use it.
//
// A FilesystemError keeps its own code. Unrecognized non-nil errors map to
// CodeOSError. Classify returns CodeUnknown for nil.
func Classify(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var fe FilesystemError
	if stderrors.As(err, &fe) {
		return fe.Code()
	}

	// ENOTEMPTY matches fs.ErrExist, so the specific errnos come first.
	switch {
	case stderrors.Is(err, syscall.ENOTDIR):
		return CodeNotADirectory
	case stderrors.Is(err, syscall.EISDIR):
		return CodeIsADirectory
	case stderrors.Is(err, syscall.ELOOP):
		return CodeTooManySymlinks
	case stderrors.Is(err, syscall.ENOTEMPTY):
		return CodeDirectoryNotEmpty
	case stderrors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		return CodePermissionDenied
	case stderrors.Is(err, stderrors.ErrUnsupported),
		stderrors.Is(err, syscall.ENOTSUP),
		stderrors.Is(err, syscall.EOPNOTSUPP):
		return CodeUnsupported
	case stderrors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	}
	return CodeOSError
}

// PathError converts a raw backend error into a FilesystemError that names
// the failed operation and the path(s) it was applied to. The code comes from
// Classify; the raw error stays reachable through Unwrap. When the chain
// carries a syscall.Errno it is attached as the "errno" context field.
//
// Returns nil if err is nil.
//
// Example:
//
//	sess, err := backend.OpenDir(name)
//	if err != nil {
//	    return errors.PathError("open directory", err, p.String())
//	}
func PathError(op string, err error, paths ...string) FilesystemError {
	if err == nil {
		return nil
	}

	code := Classify(err)
	e := &fsError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        op,
		cause:          err,
	}
	var fe FilesystemError
	if stderrors.As(err, &fe) {
		e.classification = fe.Classification()
	}
	if len(paths) > 0 {
		e.path1 = paths[0]
	}
	if len(paths) > 1 {
		e.path2 = paths[1]
	}

	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		e.context = map[string]interface{}{"errno": int(errno)}
	}
	return e
}
