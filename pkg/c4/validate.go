package c4

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyField is returned when a required text field is blank.
	ErrEmptyField = errors.New("field must not be empty")

	// ErrFieldTooLong is returned when a text field exceeds its limit.
	ErrFieldTooLong = errors.New("field exceeds maximum length")
)

// requireText validates a required field: non-blank and within max bytes.
func requireText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: %w", field, ErrEmptyField)
	}
	return limitText(field, value, max)
}

// limitText validates an optional field: empty passes, otherwise the
// value must be within max bytes.
func limitText(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%s (%d > %d): %w", field, len(value), max, ErrFieldTooLong)
	}
	return nil
}
