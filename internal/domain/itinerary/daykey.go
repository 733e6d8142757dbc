package itinerary

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/remvana/nestmap/internal/domain/activity"
)

// DayKey identifies a calendar date without time-of-day or timezone. Using a
// value type as the grouping key avoids the locale-dependent string keys a
// Date.toDateString()-style grouping would produce.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDayKey parses a YYYY-MM-DD date into a DayKey.
func ParseDayKey(date string) (DayKey, error) {
	t, err := time.Parse(activity.DateLayout, date)
	if err != nil {
		return DayKey{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	return DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String renders the key back to YYYY-MM-DD.
func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// Before reports whether k is an earlier date than other.
func (k DayKey) Before(other DayKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}

// MarshalJSON renders the key as its YYYY-MM-DD string.
func (k DayKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a YYYY-MM-DD string.
func (k *DayKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDayKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
