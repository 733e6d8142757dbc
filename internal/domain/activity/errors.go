package activity

import "errors"

var (
	// ErrActivityNotFound indicates the activity doesn't exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidInput indicates invalid input for activity operations.
	ErrInvalidInput = errors.New("invalid activity input")
	// ErrInvalidDate indicates a date that is not a valid YYYY-MM-DD value.
	ErrInvalidDate = errors.New("invalid activity date")
	// ErrInvalidClock indicates a start time that is not a valid HH:MM value.
	ErrInvalidClock = errors.New("invalid activity time")
	// ErrInvalidMode indicates an unknown travel mode.
	ErrInvalidMode = errors.New("invalid travel mode")
	// ErrInvalidCoordinates indicates out-of-range or half-specified coordinates.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
