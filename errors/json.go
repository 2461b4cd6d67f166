package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of an error, as printed by the fswalk
// command with --json. The wrapped cause chain is excluded.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Paths lists the path(s) involved. Omitted when empty.
	Paths []string `json:"paths,omitempty"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// Raw errors are reported with the code Classify assigns them and their
// error text as the message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var fe FilesystemError
	if !As(err, &fe) {
		code := Classify(err)
		return &ErrorResponse{
			Code:           string(code),
			Message:        err.Error(),
			Classification: string(getDefaultClassification(code)),
		}
	}

	return &ErrorResponse{
		Code:           string(fe.Code()),
		Message:        fe.Message(),
		Classification: string(fe.Classification()),
		Paths:          paths(fe.Path1(), fe.Path2()),
		Context:        fe.Context(),
	}
}

// MarshalJSON implements json.Marshaler for fsError.
func (e *fsError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Paths:          paths(e.path1, e.path2),
		Context:        e.context,
	})
	if err != nil {
		return nil, &fsError{
			code:           CodeInternal,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}

func paths(p1, p2 string) []string {
	var out []string
	if p1 != "" {
		out = append(out, p1)
	}
	if p2 != "" {
		out = append(out, p2)
	}
	return out
}
