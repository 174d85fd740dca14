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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Console mode errors
	ErrHandleUnavailable ErrorCode = "HANDLE_UNAVAILABLE"
	ErrModeQueryFailed   ErrorCode = "MODE_QUERY_FAILED"
	ErrModeSetFailed     ErrorCode = "MODE_SET_FAILED"
)

// TermctlError represents a structured error with code and message
type TermctlError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *TermctlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TermctlError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TermctlError) Is(target error) bool {
	var targetErr *TermctlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TermctlError with the given code and message
func New(code ErrorCode, message string) *TermctlError {
	return &TermctlError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new TermctlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TermctlError {
	return &TermctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a TermctlError
func Wrap(err error, code ErrorCode, message string) *TermctlError {
	if err == nil {
		return nil
	}
	return &TermctlError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TermctlError {
	if err == nil {
		return nil
	}
	return &TermctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
	}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var termctlErr *TermctlError
	if errors.As(err, &termctlErr) {
		return termctlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TermctlError
func GetErrorCode(err error) ErrorCode {
	var termctlErr *TermctlError
	if errors.As(err, &termctlErr) {
		return termctlErr.Code
	}
	return ErrUnknown
}
