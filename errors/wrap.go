package errors

import (
	stderrors "errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is a FilesystemError, its classification and paths are preserved.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := client.ListBuckets(ctx); err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "failed to reach storage endpoint")
//	}
func Wrap(err error, code ErrorCode, message string) FilesystemError {
	if err == nil {
		return nil
	}

	wrapped := &fsError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		cause:          err,
	}
	var fe FilesystemError
	if stderrors.As(err, &fe) {
		wrapped.classification = fe.Classification()
		wrapped.path1 = fe.Path1()
		wrapped.path2 = fe.Path2()
	}
	return wrapped
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) FilesystemError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) FilesystemError {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, code, message).(*fsError)
	wrapped.context = copyContext(ctx)
	return wrapped
}
