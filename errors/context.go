package errors

// WithContext adds a single context field to an error.
// Returns a new FilesystemError with the field added; existing fields are preserved.
//
// If err is not a FilesystemError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "mount", "//<scratch>")
func WithContext(err error, key string, value interface{}) FilesystemError {
	if err == nil {
		return nil
	}

	e := clone(err)
	if e.context == nil {
		e.context = make(map[string]interface{}, 1)
	}
	e.context[key] = value
	return e
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not a FilesystemError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) FilesystemError {
	if err == nil {
		return nil
	}

	e := clone(err)
	if e.context == nil {
		e.context = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		e.context[k] = v
	}
	return e
}

// WithClassification overrides the classification of an error.
//
// If err is not a FilesystemError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	// A NOT_FOUND from an eventually consistent store may be worth retrying.
//	err = errors.WithClassification(err, errors.ClassificationRetryable)
func WithClassification(err error, classification ErrorClassification) FilesystemError {
	if err == nil {
		return nil
	}

	e := clone(err)
	e.classification = classification
	return e
}
