package stepper

import (
	"fmt"

	"github.com/muurk/stepper/internal/config"
)

// Alert text for rejected drafts.
const (
	AlertTitle        = "Invalid Value"
	MessageNotANumber = "Must contain a valid number."
)

// Validate checks a draft against cfg. On success it returns the parsed
// value and a nil error. On failure it returns the fallback candidate
// together with a *ValidationError: the violated bound for range errors,
// lastGood (clamped into range) for parse errors.
func Validate(draft string, cfg config.Config, lastGood int) (int, error) {
	v, err := Parse(draft)
	if err != nil {
		fallback := cfg.Clamp(lastGood)
		return fallback, &ValidationError{
			Kind:      ErrParse,
			Input:     draft,
			Candidate: fallback,
			Message:   MessageNotANumber,
			Err:       err,
		}
	}

	if v < cfg.Minimum {
		return cfg.Minimum, &ValidationError{
			Kind:      ErrRangeUnderflow,
			Input:     draft,
			Candidate: cfg.Minimum,
			Message:   fmt.Sprintf("Must be at least %s.", Format(cfg.Minimum, cfg.Unit)),
		}
	}
	if v > cfg.Maximum {
		return cfg.Maximum, &ValidationError{
			Kind:      ErrRangeOverflow,
			Input:     draft,
			Candidate: cfg.Maximum,
			Message:   fmt.Sprintf("Must be at most %s.", Format(cfg.Maximum, cfg.Unit)),
		}
	}

	return v, nil
}
