package trip

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateDateRange checks both dates parse and end is not before start.
func ValidateDateRange(start, end string) error {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return fmt.Errorf("%w: start %q", ErrInvalidDateRange, start)
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return fmt.Errorf("%w: end %q", ErrInvalidDateRange, end)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: %s before %s", ErrInvalidDateRange, end, start)
	}
	return nil
}

// ValidateCreateInput validates fields required to create a trip.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrInvalidInput
	}
	return ValidateDateRange(req.StartDate, req.EndDate)
}
