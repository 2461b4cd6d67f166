package errors

import (
	stderrors "errors"
	"strconv"
	"strings"
)

// fsError is the concrete implementation of FilesystemError.
// It is private to enforce construction through package functions.
type fsError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	path1          string
	path2          string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: `[CODE] message "path1", "path2": cause`, where the paths and the
// cause are omitted when absent.
func (e *fsError) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(string(e.code))
	b.WriteString("] ")
	b.WriteString(e.message)
	if e.path1 != "" {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(e.path1))
	}
	if e.path2 != "" {
		b.WriteString(", ")
		b.WriteString(strconv.Quote(e.path2))
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Code returns the error code.
func (e *fsError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *fsError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *fsError) Message() string {
	return e.message
}

// Path1 returns the first path.
func (e *fsError) Path1() string {
	return e.path1
}

// Path2 returns the second path.
func (e *fsError) Path2() string {
	return e.path2
}

// Context returns a copy of the context map, or nil.
func (e *fsError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *fsError) Unwrap() error {
	return e.cause
}

// clone returns a modifiable copy of err. Plain errors become CodeUnknown
// errors whose message is the original text.
func clone(err error) *fsError {
	var fe FilesystemError
	if !stderrors.As(err, &fe) {
		return &fsError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}
	return &fsError{
		code:           fe.Code(),
		classification: fe.Classification(),
		message:        fe.Message(),
		path1:          fe.Path1(),
		path2:          fe.Path2(),
		context:        fe.Context(),
		cause:          fe.Unwrap(),
	}
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
