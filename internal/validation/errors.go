package validation

import "strings"

// Error codes attached to field failures.
const (
	CodeRequired      = "Required"
	CodeInvalidEnum   = "InvalidEnum"
	CodeInvalidFormat = "InvalidFormat"
	CodeOutOfRange    = "OutOfRange"
)

// FieldError is used to indicate an error with a specific payload field.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// Error is a local validation failure. It never reaches the network; the
// form layer resolves it in place.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Field returns the first error recorded for the named field, if any.
func (e *Error) Field(name string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldError{}, false
}

func codeForTag(tag string) string {
	switch tag {
	case "required":
		return CodeRequired
	case "oneof":
		return CodeInvalidEnum
	case "url", "email":
		return CodeInvalidFormat
	case "gte", "min", "max":
		return CodeOutOfRange
	default:
		return CodeInvalidFormat
	}
}
