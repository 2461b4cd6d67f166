package errors

// ErrorCode represents a specific filesystem error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Filesystem errors.

	// CodeNotFound indicates the path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeNotADirectory indicates a directory operation was applied to a non-directory.
	CodeNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeIsADirectory indicates a file operation was applied to a directory.
	CodeIsADirectory ErrorCode = "IS_A_DIRECTORY"

	// CodePermissionDenied indicates the caller lacks access to the path.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// CodeTooManySymlinks indicates symbolic link resolution looped or exceeded its limit.
	CodeTooManySymlinks ErrorCode = "TOO_MANY_SYMBOLIC_LINKS"

	// CodeAlreadyExists indicates the path already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeDirectoryNotEmpty indicates a directory still has entries.
	CodeDirectoryNotEmpty ErrorCode = "DIRECTORY_NOT_EMPTY"

	// CodeUnsupported indicates the backend cannot perform the operation.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeOSError is the generic code for any other operating system failure.
	// The raw errno, when known, is attached as the "errno" context field.
	CodeOSError ErrorCode = "OS_ERROR"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Infrastructure errors, reported by remote backends.

	// CodeNetwork indicates a network operation failed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeUnavailable indicates the storage service is temporarily unavailable.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
