package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "amount", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error envelope written for every failed request.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST", "USER_ALREADY_EXISTS").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the client may show Message to the end user as-is.
//   - Errors: per-field validation errors.
//   - Text: Message again under "error", the key earlier clients read.
//     Filled in by the global error handler.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Text     string       `json:"error,omitempty"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError, regardless of its fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
