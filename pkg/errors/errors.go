package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the registration and teardown paths
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Registration errors
	ErrClassification  ErrorCode = "CLASSIFICATION"
	ErrNilResource     ErrorCode = "NIL_RESOURCE"
	ErrInvalidKey      ErrorCode = "INVALID_KEY"
	ErrInvalidResource ErrorCode = "INVALID_RESOURCE"
	ErrDestroyed       ErrorCode = "DESTROYED"

	// Teardown errors
	ErrTeardown ErrorCode = "TEARDOWN"
)

// LifetimeError represents a structured error with code and details
type LifetimeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LifetimeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LifetimeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LifetimeError) Is(target error) bool {
	var targetErr *LifetimeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LifetimeError with the given code and message
func New(code ErrorCode, message string) *LifetimeError {
	return &LifetimeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LifetimeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LifetimeError {
	return &LifetimeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LifetimeError
func Wrap(err error, code ErrorCode, message string) *LifetimeError {
	if err == nil {
		return nil
	}
	return &LifetimeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LifetimeError {
	if err == nil {
		return nil
	}
	return &LifetimeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LifetimeError) WithDetail(key string, value interface{}) *LifetimeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lifetimeErr *LifetimeError
	if errors.As(err, &lifetimeErr) {
		return lifetimeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LifetimeError
func GetErrorCode(err error) ErrorCode {
	var lifetimeErr *LifetimeError
	if errors.As(err, &lifetimeErr) {
		return lifetimeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LifetimeError
func GetErrorDetails(err error) map[string]interface{} {
	var lifetimeErr *LifetimeError
	if errors.As(err, &lifetimeErr) {
		return lifetimeErr.Details
	}
	return nil
}
