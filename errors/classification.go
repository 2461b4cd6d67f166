package errors

// ErrorClassification indicates whether an error should trigger a retry.
// Local filesystem failures are permanent; only failures talking to a remote
// backend are worth retrying.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeTimeout:     ClassificationRetryable,
	CodeNetwork:     ClassificationRetryable,
	CodeUnavailable: ClassificationRetryable,

	CodeNotFound:          ClassificationPermanent,
	CodeNotADirectory:     ClassificationPermanent,
	CodeIsADirectory:      ClassificationPermanent,
	CodePermissionDenied:  ClassificationPermanent,
	CodeTooManySymlinks:   ClassificationPermanent,
	CodeAlreadyExists:     ClassificationPermanent,
	CodeDirectoryNotEmpty: ClassificationPermanent,
	CodeUnsupported:       ClassificationPermanent,
	CodeOSError:           ClassificationPermanent,
	CodeInvalidInput:      ClassificationPermanent,
	CodeInvalidConfig:     ClassificationPermanent,
	CodeInternal:          ClassificationPermanent,
	CodeUnknown:           ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unmapped codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
