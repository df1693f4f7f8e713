package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a capcode error code.
type ErrorCode string

const (
	ErrMissingInput     ErrorCode = "MISSING_INPUT"     // 400
	ErrMalformedCode    ErrorCode = "MALFORMED_CODE"    // 400
	ErrInvalidMagnitude ErrorCode = "INVALID_MAGNITUDE" // 400
	ErrUnknownUnit      ErrorCode = "UNKNOWN_UNIT"      // 400
	ErrUnknownColor     ErrorCode = "UNKNOWN_COLOR"     // 400
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // 400
	ErrOutOfRange       ErrorCode = "OUT_OF_RANGE"      // 422
	ErrInternal         ErrorCode = "INTERNAL"          // 500
)

// CapError represents a structured error with code, status, and details.
// A CapError returned from a conversion means "no result to show".
type CapError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *CapError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewMissingInput creates a 400 error for an empty or unselected field.
func NewMissingInput(field string) *CapError {
	return &CapError{
		Code:    ErrMissingInput,
		Status:  400,
		Message: fmt.Sprintf("%s is required", field),
		Details: map[string]any{"field": field},
	}
}

// NewMalformedCode creates a 400 error for a code that is not exactly three digits.
func NewMalformedCode(code string) *CapError {
	return &CapError{
		Code:    ErrMalformedCode,
		Status:  400,
		Message: fmt.Sprintf("code must be exactly 3 digits, got %q", code),
		Details: map[string]any{"code": code},
	}
}

// NewInvalidMagnitude creates a 400 error for a magnitude that is not a finite non-negative number.
func NewInvalidMagnitude(magnitude, reason string) *CapError {
	return &CapError{
		Code:    ErrInvalidMagnitude,
		Status:  400,
		Message: fmt.Sprintf("invalid magnitude %q: %s", magnitude, reason),
		Details: map[string]any{"magnitude": magnitude},
	}
}

// NewUnknownUnit creates a 400 error for an unrecognized unit token.
func NewUnknownUnit(unit string) *CapError {
	return &CapError{
		Code:    ErrUnknownUnit,
		Status:  400,
		Message: fmt.Sprintf("unknown unit %q (want pF, nF or uF)", unit),
		Details: map[string]any{"unit": unit},
	}
}

// NewUnknownColor creates a 400 error for a band that is neither a digit nor a known color.
func NewUnknownColor(band string) *CapError {
	return &CapError{
		Code:    ErrUnknownColor,
		Status:  400,
		Message: fmt.Sprintf("unknown color band %q", band),
		Details: map[string]any{"band": band},
	}
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *CapError {
	return &CapError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewOutOfRange creates a 422 error when a value needs an exponent digit above 9.
// value is the capacitance as entered, e.g. "100000 µF".
func NewOutOfRange(value string) *CapError {
	return &CapError{
		Code:    ErrOutOfRange,
		Status:  422,
		Message: fmt.Sprintf("%s does not fit a 3-digit code (max 99 x 10^9 pF)", value),
		Details: map[string]any{"value": value},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message stays generic; the cause is kept in Details for logging only.
func NewInternal(err error) *CapError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &CapError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
	}
}

// Is checks if an error is (or wraps) a CapError with the given code.
func Is(err error, code ErrorCode) bool {
	var cErr *CapError
	if stderrors.As(err, &cErr) {
		return cErr.Code == code
	}
	return false
}

// As extracts a CapError from err, wrapping anything else as INTERNAL.
func As(err error) *CapError {
	var cErr *CapError
	if stderrors.As(err, &cErr) {
		return cErr
	}
	return NewInternal(err)
}
