package stepper

import (
	"strconv"
	"strings"
)

// Format renders v as plain base-10 digits followed by unit, with no
// separator and no grouping.
func Format(v int, unit string) string {
	return strconv.Itoa(v) + unit
}

// StripUnit removes a trailing unit suffix so the number can be edited.
func StripUnit(text, unit string) string {
	if unit == "" {
		return text
	}
	return strings.TrimSuffix(text, unit)
}

// Parse reads an integer literal. Surrounding whitespace is ignored and a
// leading sign is allowed; anything else, including an empty string or a
// value that does not fit in an int, fails.
func Parse(text string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(text))
}
