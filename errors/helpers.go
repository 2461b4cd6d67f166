package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a FilesystemError.
// Use Classify to derive a code from a raw backend error instead.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // Handle not found
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var fe FilesystemError
	if stderrors.As(err, &fe) {
		return fe.Code()
	}

	return CodeUnknown
}

// HasCode reports whether err classifies as code. Unlike GetCode it also
// recognizes raw io/fs and syscall errors.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && Classify(err) == code
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not a FilesystemError.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var fe FilesystemError
	if stderrors.As(err, &fe) {
		return fe.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a FilesystemError.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
