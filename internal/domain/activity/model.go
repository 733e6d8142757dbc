package activity

import "time"

// TravelMode is the assumed mode of transport from the previous activity.
type TravelMode string

const (
	ModeWalking TravelMode = "walking"
	ModeDriving TravelMode = "driving"
	ModeTransit TravelMode = "transit"
)

// Tag categorizes an activity for filtering and display.
type Tag string

const (
	TagFood        Tag = "food"
	TagSightseeing Tag = "sightseeing"
	TagShopping    Tag = "shopping"
	TagTransport   Tag = "transport"
	TagOther       Tag = "other"
)

// Activity is a single scheduled item within a trip: a visit, a meal, a
// museum slot. Date and Time are stored normalized (YYYY-MM-DD, zero-padded
// HH:MM); coordinates are optional and always set or unset as a pair.
type Activity struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenant_id"`
	TripID       string     `json:"trip_id"`
	Title        string     `json:"title"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	LocationName string     `json:"location_name,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	Mode         TravelMode `json:"travel_mode"`
	Tag          Tag        `json:"tag,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ModifiedAt   time.Time  `json:"modified_at"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (a *Activity) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
