package config

import (
	"errors"
	"fmt"
)

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err (or anything it wraps) is a
// ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks the configuration invariants. All violations are
// returned together.
func (c Config) Validate() error {
	var errs []error

	if c.Minimum > c.Maximum {
		errs = append(errs, &ValidationError{
			Field:   "bounds",
			Message: fmt.Sprintf("minimum %d is greater than maximum %d", c.Minimum, c.Maximum),
		})
	}
	if c.Step < 1 {
		errs = append(errs, &ValidationError{
			Field:   "step",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Step),
		})
	}
	if c.LabelOpacity < 0 || c.LabelOpacity > 1 {
		errs = append(errs, &ValidationError{
			Field:   "label_opacity",
			Message: fmt.Sprintf("must be between 0 and 1, got %g", c.LabelOpacity),
		})
	}
	if c.MinimumDecimalPlaces < 0 || c.MaximumDecimalPlaces < 0 {
		errs = append(errs, &ValidationError{
			Field:   "decimal_places",
			Message: "must not be negative",
		})
	} else if c.MinimumDecimalPlaces > c.MaximumDecimalPlaces {
		errs = append(errs, &ValidationError{
			Field: "decimal_places",
			Message: fmt.Sprintf("minimum %d is greater than maximum %d",
				c.MinimumDecimalPlaces, c.MaximumDecimalPlaces),
		})
	}

	return errors.Join(errs...)
}
