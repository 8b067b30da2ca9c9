package availability

import "errors"

var (
	// ErrInvalidTime is returned when a block or booking carries a time value
	// that does not parse as HH:MM. The engine fails fast instead of silently
	// defaulting, since silent defaults mask configuration bugs.
	ErrInvalidTime = errors.New("availability: invalid HH:MM time value")

	// ErrInvalidDuration is returned for a non-positive slot duration
	ErrInvalidDuration = errors.New("availability: invalid slot duration")

	// ErrInvalidRange is returned when a date range has end before start
	ErrInvalidRange = errors.New("availability: invalid date range")
)
