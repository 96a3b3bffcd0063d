package domain

import (
	"fmt"
	"strings"
)

// CodeValidation marks a request rejected by field validation.
const CodeValidation ErrorCode = "VALIDATION_ERROR"

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field failure for a request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Message: "invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be between %d and %d", min, max),
		Value:   value,
	}
}

func NewRequiredError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewTooLongError(field string, value interface{}, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be at most %d characters", max),
		Value:   value,
	}
}
