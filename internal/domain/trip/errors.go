package trip

import "errors"

var (
	// ErrTripNotFound indicates the trip doesn't exist.
	ErrTripNotFound = errors.New("trip not found")
	// ErrInvalidInput indicates invalid input for trip operations.
	ErrInvalidInput = errors.New("invalid trip input")
	// ErrInvalidDateRange indicates an end date before the start date, or an
	// unparseable date.
	ErrInvalidDateRange = errors.New("invalid trip date range")
)
