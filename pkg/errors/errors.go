package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Style configuration errors
	ErrUnknownTemplate ErrorCode = "UNKNOWN_TEMPLATE"
	ErrInvalidValue    ErrorCode = "INVALID_VALUE"
	ErrValidation      ErrorCode = "VALIDATION_FAILURE"

	// Render errors
	ErrRenderFailure ErrorCode = "RENDER_FAILURE"
	ErrRenderTimeout ErrorCode = "RENDER_TIMEOUT"

	// File errors
	ErrInputRead   ErrorCode = "INPUT_READ"
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
)

// DocgenError represents a structured error with code and details
type DocgenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DocgenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DocgenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DocgenError) Is(target error) bool {
	var targetErr *DocgenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DocgenError with the given code and message
func New(code ErrorCode, message string) *DocgenError {
	return &DocgenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DocgenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DocgenError {
	return &DocgenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DocgenError
func Wrap(err error, code ErrorCode, message string) *DocgenError {
	if err == nil {
		return nil
	}
	return &DocgenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DocgenError {
	if err == nil {
		return nil
	}
	return &DocgenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DocgenError) WithDetail(key string, value interface{}) *DocgenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DocgenError) WithDetails(details map[string]interface{}) *DocgenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var docgenErr *DocgenError
	if errors.As(err, &docgenErr) {
		return docgenErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DocgenError
func GetErrorCode(err error) ErrorCode {
	var docgenErr *DocgenError
	if errors.As(err, &docgenErr) {
		return docgenErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DocgenError
func GetErrorDetails(err error) map[string]interface{} {
	var docgenErr *DocgenError
	if errors.As(err, &docgenErr) {
		return docgenErr.Details
	}
	return nil
}
