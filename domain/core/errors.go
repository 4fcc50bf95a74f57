package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Construction errors
	ErrEmptySample      = errors.New("sample cannot be empty")
	ErrUnsupportedInput = errors.New("unsupported input container")
	ErrInsufficientData = errors.New("insufficient observations for inference")

	// Computation errors
	ErrNotNumeric   = errors.New("observations are not numeric")
	ErrNoSummarizer = errors.New("summarize requires a concrete sample kind")

	// Lookup errors
	ErrColumnNotFound = errors.New("column not found")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewConversionError(value string) error {
	return fmt.Errorf("%w: cannot convert %q", ErrNotNumeric, value)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptySample) ||
		errors.Is(err, ErrUnsupportedInput) ||
		errors.Is(err, ErrInsufficientData)
}

func IsConversionError(err error) bool {
	return errors.Is(err, ErrNotNumeric)
}
