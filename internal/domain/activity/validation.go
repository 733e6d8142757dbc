package activity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date format for trips and activities.
const DateLayout = "2006-01-02"

// ValidateDate checks that date is a real calendar date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// NormalizeClock validates a start time and returns it zero-padded as HH:MM.
// Unpadded input such as "9:05" is accepted; the padded form keeps
// lexicographic ordering consistent with chronological ordering.
func NormalizeClock(clock string) (string, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// ParseMode validates a travel mode, defaulting empty input to walking.
func ParseMode(mode string) (TravelMode, error) {
	switch TravelMode(mode) {
	case "":
		return ModeWalking, nil
	case ModeWalking, ModeDriving, ModeTransit:
		return TravelMode(mode), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

// ValidateCoordinates checks that latitude and longitude are either both
// absent or both present and within range.
func ValidateCoordinates(lat, lon *float64) error {
	if lat == nil && lon == nil {
		return nil
	}
	if lat == nil || lon == nil {
		return fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidCoordinates)
	}
	if *lat < -90 || *lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinates, *lat)
	}
	if *lon < -180 || *lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinates, *lon)
	}
	return nil
}

func validateTag(tag string) (Tag, error) {
	switch Tag(tag) {
	case "", TagOther:
		return TagOther, nil
	case TagFood, TagSightseeing, TagShopping, TagTransport:
		return Tag(tag), nil
	default:
		return "", fmt.Errorf("%w: unknown tag %q", ErrInvalidInput, tag)
	}
}
