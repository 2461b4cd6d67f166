package errors

// FilesystemError extends the standard error interface with the structured
// information every fallible filesystem operation reports: a code from the
// filesystem taxonomy, the path(s) involved, and the underlying cause.
//
// FilesystemError is compatible with the standard library error helpers
// (errors.Is, errors.As, errors.Unwrap), so a FilesystemError wrapping an
// *fs.PathError still matches fs.ErrNotExist.
type FilesystemError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message, usually the name of
	// the failed operation.
	Message() string

	// Path1 returns the first path involved in the failure, or "".
	Path1() string

	// Path2 returns the second path involved in the failure, or "".
	Path2() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}
