// Package errors provides structured error types for dotuml.
//
// Every failure that can stop a conversion carries a machine-readable [Code]
// so the command line can pick an exit status and print a short message
// without string matching:
//
//   - USAGE: wrong command-line arguments
//   - FILE_NOT_FOUND, READ_FAILED, INVALID_ENCODING: the input cannot be read
//   - WRITE_FAILED: the output cannot be written
//   - INVALID_CONFIG: the configuration file is unreadable or out of range
//   - RENDER_FAILED: Graphviz preview rendering failed
//
// Statements in the input that do not match a recognized shape are not errors;
// the extractor skips them.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUsage, "accepts 2 arg(s), received %d", n)
//	if errors.Is(err, errors.ErrCodeUsage) {
//	    // print usage
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeReadFailed, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Invocation errors
	ErrCodeUsage Code = "USAGE"

	// Input errors
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeReadFailed      Code = "READ_FAILED"
	ErrCodeInvalidEncoding Code = "INVALID_ENCODING"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Output errors
	ErrCodeWriteFailed  Code = "WRITE_FAILED"
	ErrCodeRenderFailed Code = "RENDER_FAILED"
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
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
