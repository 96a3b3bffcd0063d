package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Quiz generation errors
	CodeExtraction        ErrorCode = "EXTRACTION_ERROR"
	CodeProvider          ErrorCode = "PROVIDER_ERROR"
	CodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
)

// Context keys attached to a malformed response error.
const (
	ContextRawResponse = "raw_response"
	ContextJSONError   = "json_error"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that is surfaced to the caller.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

// NewExtractionError reports a document that could not be read or parsed.
func NewExtractionError(err error) *DomainError {
	return NewError(CodeExtraction, "Failed to extract text from document", err)
}

// NewProviderError reports a failed call to the language model.
func NewProviderError(err error) *DomainError {
	return NewError(CodeProvider, "Failed to get a response from the language model", err)
}

// NewMalformedResponseError reports a model response with no recoverable JSON
// object. The raw text and the parse failure are kept for debugging.
func NewMalformedResponseError(raw string, cause error) *DomainError {
	e := NewError(CodeMalformedResponse, "Failed to parse quiz data", cause)
	e.WithContext(ContextRawResponse, raw)
	if cause != nil {
		e.WithContext(ContextJSONError, cause.Error())
	}
	return e
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

func IsExtractionError(err error) bool { return HasCode(err, CodeExtraction) }

func IsProviderError(err error) bool { return HasCode(err, CodeProvider) }

func IsMalformedResponse(err error) bool { return HasCode(err, CodeMalformedResponse) }

func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }
