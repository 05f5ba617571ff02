package stepper

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected draft.
type ErrorKind int

const (
	// ErrParse indicates the draft is not an integer literal
	ErrParse ErrorKind = iota
	// ErrRangeUnderflow indicates the draft is below the minimum
	ErrRangeUnderflow
	// ErrRangeOverflow indicates the draft is above the maximum
	ErrRangeOverflow
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrParse:
		return "parse error"
	case ErrRangeUnderflow:
		return "range underflow"
	case ErrRangeOverflow:
		return "range overflow"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// ValidationError describes why a draft was rejected and what the field
// falls back to when the rejection is corrected silently.
type ValidationError struct {
	Kind      ErrorKind
	Input     string // The draft as typed
	Candidate int    // Clamped bound, or the pre-edit value for parse errors
	Message   string // User-facing alert text
	Err       error  // Underlying parse error, if any
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Kind, e.Input, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// KindOf returns the kind of a ValidationError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return 0, false
	}
	return ve.Kind, true
}
