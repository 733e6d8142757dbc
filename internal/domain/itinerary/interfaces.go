package itinerary

import (
	"context"
	"time"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/trip"
)

// TripRepository provides the trip lookups the itinerary service needs.
type TripRepository interface {
	Get(ctx context.Context, tenantID, id string) (*trip.Trip, error)
}

// ActivityRepository provides the activity listing the builder consumes.
type ActivityRepository interface {
	ListByTrip(ctx context.Context, tenantID, tripID string, opts activity.ListOptions) ([]activity.Activity, error)
}

// ConflictEvent describes the conflicts found on a single itinerary day.
type ConflictEvent struct {
	TripID          string   `json:"trip_id"`
	Date            string   `json:"date"`
	TimeConflicts   []string `json:"time_conflicts,omitempty"`
	TravelConflicts []string `json:"travel_conflicts,omitempty"`
}

// EventPublisher receives conflict events as itineraries are built.
type EventPublisher interface {
	ConflictDetected(ctx context.Context, ev ConflictEvent) error
}

// Observer records build timings and conflict counts.
type Observer interface {
	ObserveBuild(d time.Duration)
	ConflictsInc(n int)
}
