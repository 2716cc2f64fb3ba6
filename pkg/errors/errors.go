// Package errors provides structured error types for the typosquatting analyzer.
//
// The analyzer distinguishes two classes of failure:
//   - Configuration errors (INVALID_*): fatal, reported before any analysis runs
//   - Input-access errors (FILE_*): recoverable, the manifest is treated as empty
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidThreshold, "threshold must be between 0 and 1, got %v", t)
//	if errors.IsConfigError(err) {
//	    // exit 1
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileUnreadable, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidInput          Code = "INVALID_INPUT"
	ErrCodeInvalidThreshold      Code = "INVALID_THRESHOLD"
	ErrCodeInvalidReferenceCount Code = "INVALID_REFERENCE_COUNT"
	ErrCodeInvalidLogLevel       Code = "INVALID_LOG_LEVEL"
	ErrCodeInvalidConfig         Code = "INVALID_CONFIG"
	ErrCodeInvalidReferenceFile  Code = "INVALID_REFERENCE_FILE"

	// Reported, never fatal
	ErrCodeInvalidPackage Code = "INVALID_PACKAGE"

	// Input-access errors
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeFileUnreadable Code = "FILE_UNREADABLE"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsConfigError reports whether err belongs to the fatal configuration class.
func IsConfigError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput,
		ErrCodeInvalidThreshold,
		ErrCodeInvalidReferenceCount,
		ErrCodeInvalidLogLevel,
		ErrCodeInvalidConfig,
		ErrCodeInvalidReferenceFile:
		return true
	}
	return false
}

// IsInputAccessError reports whether err means the manifest could not be read.
// Callers treat these as an empty dependency list.
func IsInputAccessError(err error) bool {
	code := GetCode(err)
	return code == ErrCodeFileNotFound || code == ErrCodeFileUnreadable
}
