// Package errors provides structured error types for the c4kit
// application boundary.
//
// Library packages (c4, dsl, manifest) report failures through
// sentinel errors; this package classifies them into machine-readable
// codes so the CLI and the HTTP endpoint present failures
// consistently.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - UNKNOWN_*: Unresolvable references
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidManifest, "missing name in %s", path)
//	if errors.Is(err, errors.ErrCodeInvalidManifest) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidElement, origErr, "person %s", name)
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/c4kit/c4kit/pkg/c4"
	"github.com/c4kit/c4kit/pkg/dsl"
	"github.com/c4kit/c4kit/pkg/manifest"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidElement  Code = "INVALID_ELEMENT"
	ErrCodeInvalidText     Code = "INVALID_TEXT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Reference errors
	ErrCodeUnknownReference Code = "UNKNOWN_REFERENCE"
	ErrCodeUnknownToken     Code = "UNKNOWN_TOKEN"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
	ErrCodeConsumed Code = "SERIALIZER_CONSUMED"
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

// Classify wraps a library error in a coded Error. Already-coded
// errors pass through unchanged; unrecognized errors become
// ErrCodeInternal.
func Classify(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	switch {
	case errors.Is(err, c4.ErrEmptyField), errors.Is(err, c4.ErrFieldTooLong):
		return Wrap(ErrCodeInvalidElement, err, "invalid element")
	case errors.Is(err, dsl.ErrInvalidText):
		return Wrap(ErrCodeInvalidText, err, "invalid text")
	case errors.Is(err, dsl.ErrUnknownReference):
		return Wrap(ErrCodeUnknownReference, err, "unknown reference")
	case errors.Is(err, dsl.ErrSerializerConsumed):
		return Wrap(ErrCodeConsumed, err, "serializer already consumed")
	case errors.Is(err, dsl.ErrIdentifierSpaceExhausted):
		return Wrap(ErrCodeInternal, err, "identifier assignment failed")
	case errors.Is(err, manifest.ErrUnknownToken):
		return Wrap(ErrCodeUnknownToken, err, "unknown token")
	case errors.Is(err, manifest.ErrUnsupportedFormat):
		return Wrap(ErrCodeInvalidFormat, err, "unsupported format")
	default:
		return Wrap(ErrCodeInternal, err, "internal error")
	}
}

// HTTPStatus maps an error code to the HTTP status the API responds
// with.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidManifest, ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case ErrCodeInvalidElement, ErrCodeInvalidText,
		ErrCodeUnknownReference, ErrCodeUnknownToken:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
