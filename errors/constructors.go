package errors

import "fmt"

// New creates a new FilesystemError with the given code and message.
// The error classification is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "mount name must start with //<")
func New(code ErrorCode, message string) FilesystemError {
	return &fsError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new FilesystemError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeAlreadyExists, "mount %q already registered", name)
func Newf(code ErrorCode, format string, args ...interface{}) FilesystemError {
	return New(code, fmt.Sprintf(format, args...))
}
