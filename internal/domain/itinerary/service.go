package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/trip"
	"github.com/remvana/nestmap/internal/repository"
)

// Service assembles annotated itineraries from stored activities. Conflict
// events are published best-effort; a failing publisher never fails the
// build.
type Service struct {
	trips      TripRepository
	activities ActivityRepository
	profile    Profile
	events     EventPublisher
	observer   Observer
	logger     *slog.Logger
}

// NewService creates a new itinerary service. events and observer may be nil.
func NewService(
	trips TripRepository,
	activities ActivityRepository,
	profile Profile,
	events EventPublisher,
	observer Observer,
	logger *slog.Logger,
) *Service {
	return &Service{
		trips:      trips,
		activities: activities,
		profile:    profile,
		events:     events,
		observer:   observer,
		logger:     logger,
	}
}

// BuildForTrip loads a trip's activities and returns the annotated itinerary.
func (s *Service) BuildForTrip(ctx context.Context, tenantID, tripID string) (*Itinerary, error) {
	if _, err := s.trips.Get(ctx, tenantID, tripID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, trip.ErrTripNotFound
		}
		return nil, fmt.Errorf("loading trip: %w", err)
	}

	acts, err := s.activities.ListByTrip(ctx, tenantID, tripID, activity.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	start := time.Now()
	it := Build(acts, s.profile)
	it.TripID = tripID
	if s.observer != nil {
		s.observer.ObserveBuild(time.Since(start))
	}

	s.reportConflicts(ctx, &it)
	return &it, nil
}

func (s *Service) reportConflicts(ctx context.Context, it *Itinerary) {
	total := 0
	for _, day := range it.Days {
		ev := ConflictEvent{TripID: it.TripID, Date: day.Date.String()}
		for _, item := range day.Items {
			if item.TimeConflict {
				ev.TimeConflicts = append(ev.TimeConflicts, item.Activity.ID)
			}
			if item.TravelConflict {
				ev.TravelConflicts = append(ev.TravelConflicts, item.Activity.ID)
			}
		}
		n := len(ev.TimeConflicts) + len(ev.TravelConflicts)
		if n == 0 {
			continue
		}
		total += n

		if s.events != nil {
			if err := s.events.ConflictDetected(ctx, ev); err != nil && s.logger != nil {
				s.logger.Warn("publishing conflict event",
					"trip_id", it.TripID, "date", ev.Date, "error", err)
			}
		}
	}
	if total > 0 && s.observer != nil {
		s.observer.ConflictsInc(total)
	}
}
