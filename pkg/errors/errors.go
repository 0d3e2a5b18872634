// Package errors provides structured error types for melib.
//
// Lookups and interpolation fail in two broad ways: something that was asked
// for is not there, or the input handed in cannot be used. This package tags
// every failure with a machine-readable code so callers can tell the two apart
// (and narrow further) without string matching.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (malformed series, bad layout)
//   - *_NOT_FOUND: A table, row, column, chart, sheet or file is absent
//   - UNSUPPORTED / INTERNAL_ERROR: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeRowNotFound, "row %q not in table %d", label, tag)
//	if errors.IsNotFound(err) {
//	    // Handle any lookup miss
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidBreakpoints Code = "INVALID_BREAKPOINTS"
	ErrCodeInvalidLayout      Code = "INVALID_LAYOUT"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidPath        Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeTableNotFound  Code = "TABLE_NOT_FOUND"
	ErrCodeRowNotFound    Code = "ROW_NOT_FOUND"
	ErrCodeColumnNotFound Code = "COLUMN_NOT_FOUND"
	ErrCodeChartNotFound  Code = "CHART_NOT_FOUND"
	ErrCodeSheetNotFound  Code = "SHEET_NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

var notFoundCodes = map[Code]bool{
	ErrCodeNotFound:       true,
	ErrCodeTableNotFound:  true,
	ErrCodeRowNotFound:    true,
	ErrCodeColumnNotFound: true,
	ErrCodeChartNotFound:  true,
	ErrCodeSheetNotFound:  true,
	ErrCodeFileNotFound:   true,
}

var invalidInputCodes = map[Code]bool{
	ErrCodeInvalidInput:       true,
	ErrCodeInvalidBreakpoints: true,
	ErrCodeInvalidLayout:      true,
	ErrCodeInvalidFormat:      true,
	ErrCodeInvalidPath:        true,
}

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

// IsNotFound reports whether err carries any of the *_NOT_FOUND codes.
func IsNotFound(err error) bool {
	return notFoundCodes[GetCode(err)]
}

// IsInvalidInput reports whether err carries any of the INVALID_* codes.
func IsInvalidInput(err error) bool {
	return invalidInputCodes[GetCode(err)]
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
