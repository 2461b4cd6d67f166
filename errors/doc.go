// Package errors provides structured error handling for filesystem operations.
//
// Every fallible operation in this module reports a FilesystemError: an error
// code from a fixed filesystem taxonomy, the path(s) involved, a retry
// classification, optional context metadata, and the underlying cause. The
// package stays compatible with the standard library (errors.Is, errors.As,
// errors.Unwrap), so callers can keep matching io/fs sentinels.
//
// # Two forms of the same error
//
// Backends return raw errors: io/fs sentinels, *fs.PathError values, syscall
// errnos, or SDK errors translated into one of those. Classify maps any of them
// to an ErrorCode; that mapping is the only place the taxonomy is defined.
// Exported operations convert a raw error with PathError before returning it:
//
//	sess, err := backend.OpenDir(name)
//	if err != nil {
//	    return errors.PathError("open directory", err, p.String())
//	}
//
// Callers that only need the code use GetCode or HasCode:
//
//	if errors.HasCode(err, errors.CodePermissionDenied) {
//	    // skip the directory
//	}
//
// # Error Codes
//
//   - Filesystem: CodeNotFound, CodeNotADirectory, CodeIsADirectory,
//     CodePermissionDenied, CodeTooManySymlinks, CodeAlreadyExists,
//     CodeDirectoryNotEmpty, CodeUnsupported, CodeOSError
//   - Validation: CodeInvalidInput, CodeInvalidConfig
//   - Remote backends: CodeNetwork, CodeTimeout, CodeUnavailable
//   - System: CodeInternal, CodeUnknown
//
// # Error Classification
//
// Network, timeout and unavailability errors are retryable; everything else is
// permanent. Use IsRetryable for retry decisions and WithClassification to
// override the default.
//
// # JSON
//
// ToJSON flattens an error into an ErrorResponse without its cause chain:
//
//	resp := errors.ToJSON(err)
//	enc := json.NewEncoder(os.Stderr)
//	enc.SetEscapeHTML(false) // keep "//<mount>" paths readable
//	_ = enc.Encode(resp)
package errors
