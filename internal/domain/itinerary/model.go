package itinerary

import "github.com/remvana/nestmap/internal/domain/activity"

// TravelEstimate describes the estimated leg from the previous activity in
// the same day. A nil estimate on an Item means no estimate was computed
// (first of the day, or missing coordinates) — never zero travel time.
type TravelEstimate struct {
	DistanceKm float64             `json:"distance_km"`
	Minutes    int                 `json:"minutes"`
	Mode       activity.TravelMode `json:"mode"`
	Label      string              `json:"label"`
}

// Item is one activity within a day, annotated with derived scheduling info.
// Annotations are recomputed from scratch on every build; nothing here is
// ever persisted.
type Item struct {
	Activity       activity.Activity `json:"activity"`
	Travel         *TravelEstimate   `json:"travel,omitempty"`
	TimeConflict   bool              `json:"time_conflict"`
	TravelConflict bool              `json:"travel_conflict"`
}

// Day groups one calendar date's activities, ordered by start time.
type Day struct {
	Date  DayKey `json:"date"`
	Items []Item `json:"items"`
}

// Itinerary is the fully annotated view of a trip's activities. Activities
// whose date cannot be parsed are segregated into Unscheduled instead of
// being grouped under a garbage key.
type Itinerary struct {
	TripID      string              `json:"trip_id"`
	Days        []Day               `json:"days"`
	Unscheduled []activity.Activity `json:"unscheduled,omitempty"`
}
