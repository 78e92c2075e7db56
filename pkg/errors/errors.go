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
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Engine errors
	ErrPackNotFound    ErrorCode = "PACK_NOT_FOUND"
	ErrPackInvalid     ErrorCode = "PACK_INVALID"
	ErrCategoryInvalid ErrorCode = "CATEGORY_INVALID"
	ErrNotReorderable  ErrorCode = "NOT_REORDERABLE"
	ErrBadReorder      ErrorCode = "BAD_REORDER"
	ErrApplyInFlight   ErrorCode = "APPLY_IN_FLIGHT"

	// Backend errors
	ErrBackendUnavailable ErrorCode = "BACKEND_UNAVAILABLE"
	ErrBackendFailure     ErrorCode = "BACKEND_FAILURE"
	ErrIndexLoad          ErrorCode = "INDEX_LOAD"
	ErrApplyRejected      ErrorCode = "APPLY_REJECTED"
	ErrCategoryWrite      ErrorCode = "CATEGORY_WRITE"
	ErrDeleteRejected     ErrorCode = "DELETE_REJECTED"
)

// SceneryError represents a structured error with code and details.
// Backend errors that carry a machine-readable code are decoded into
// this type with the code preserved, so callers can localize or branch
// on it instead of string-matching a stringified failure.
type SceneryError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SceneryError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SceneryError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SceneryError) Is(target error) bool {
	var targetErr *SceneryError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SceneryError with the given code and message
func New(code ErrorCode, message string) *SceneryError {
	return &SceneryError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SceneryError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SceneryError {
	return &SceneryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SceneryError
func Wrap(err error, code ErrorCode, message string) *SceneryError {
	if err == nil {
		return nil
	}
	return &SceneryError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SceneryError {
	if err == nil {
		return nil
	}
	return &SceneryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SceneryError) WithDetail(key string, value interface{}) *SceneryError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var serr *SceneryError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not a SceneryError
func GetErrorCode(err error) ErrorCode {
	var serr *SceneryError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ErrUnknown
}

// IsStructured reports whether the error carries a machine-readable
// backend code, as opposed to an opaque stringified failure.
func IsStructured(err error) bool {
	var serr *SceneryError
	return errors.As(err, &serr)
}
