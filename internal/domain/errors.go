package domain

import (
	"errors"
	"fmt"
)

// Decode-path errors. Decoding is best effort, so only structural
// impossibilities surface as errors; every other malformation degrades
// to an absent field.
var (
	// ErrMissingTimeGroup indicates the report contains no parsable
	// DDHHMMZ time group at all.
	ErrMissingTimeGroup = errors.New("no time group in report")

	// ErrDateOutOfRange indicates the composed observation date does
	// not exist: a day/hour/minute outside its range, or a day the
	// reference month does not have.
	ErrDateOutOfRange = errors.New("composed date out of range")
)

// DateCompositionError reports a failure to compose the reference
// year/month with the in-text day/hour/minute into a real UTC instant.
type DateCompositionError struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int

	// Reason describes which component broke the composition.
	Reason string
}

// Error implements the error interface for DateCompositionError.
func (e *DateCompositionError) Error() string {
	return fmt.Sprintf("date composition failed: %s (year=%d month=%d day=%d hour=%d minute=%d)",
		e.Reason, e.Year, e.Month, e.Day, e.Hour, e.Minute)
}

// Unwrap returns ErrDateOutOfRange so callers can match the error kind
// with errors.Is without inspecting the message.
func (e *DateCompositionError) Unwrap() error { return ErrDateOutOfRange }

// NewDateCompositionError creates a DateCompositionError for the given
// components.
func NewDateCompositionError(year, month, day, hour, minute int, reason string) *DateCompositionError {
	return &DateCompositionError{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Reason: reason,
	}
}
