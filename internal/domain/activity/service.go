package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/remvana/nestmap/internal/domain/trip"
	"github.com/remvana/nestmap/internal/repository"
)

// Service handles activity business logic. All writes validate and normalize
// date, time, mode, and coordinates so that downstream consumers (the
// itinerary builder in particular) never see malformed scheduling fields.
type Service struct {
	activities Repository
	trips      TripRepository
	logger     *slog.Logger
}

// NewService creates a new activity service.
func NewService(activities Repository, trips TripRepository, logger *slog.Logger) *Service {
	return &Service{activities: activities, trips: trips, logger: logger}
}

// CreateRequest describes an activity creation request.
type CreateRequest struct {
	TripID       string
	Title        string
	Date         string
	Time         string
	LocationName string
	Latitude     *float64
	Longitude    *float64
	Mode         string
	Tag          string
	Notes        string
}

// UpdateRequest describes a partial activity update. Nil fields keep their
// current value; ClearCoordinates removes both coordinates.
type UpdateRequest struct {
	ID               string
	Title            *string
	Date             *string
	Time             *string
	LocationName     *string
	Latitude         *float64
	Longitude        *float64
	ClearCoordinates bool
	Mode             *string
	Tag              *string
	Notes            *string
}

// Create validates and persists a new activity under an existing trip.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Activity, error) {
	if strings.TrimSpace(req.TripID) == "" || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	if err := ValidateDate(req.Date); err != nil {
		return nil, err
	}
	clock, err := NormalizeClock(req.Time)
	if err != nil {
		return nil, err
	}
	mode, err := ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	tag, err := validateTag(req.Tag)
	if err != nil {
		return nil, err
	}
	if err := ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	if _, err := s.trips.Get(ctx, tenantID, req.TripID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, trip.ErrTripNotFound
		}
		return nil, fmt.Errorf("loading trip: %w", err)
	}

	now := time.Now()
	act := &Activity{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		TripID:       req.TripID,
		Title:        req.Title,
		Date:         req.Date,
		Time:         clock,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Mode:         mode,
		Tag:          tag,
		Notes:        req.Notes,
		CreatedAt:    now,
		ModifiedAt:   now,
	}

	if err := s.activities.Create(ctx, tenantID, act); err != nil {
		return nil, fmt.Errorf("creating activity: %w", err)
	}
	return act, nil
}

// Get fetches an activity by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Activity, error) {
	act, err := s.activities.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("getting activity: %w", err)
	}
	return act, nil
}

// Update applies a partial update with the same validation as Create.
func (s *Service) Update(ctx context.Context, tenantID string, req UpdateRequest) (*Activity, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.Get(ctx, tenantID, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrInvalidInput
		}
		updated.Title = *req.Title
	}
	if req.Date != nil {
		if err := ValidateDate(*req.Date); err != nil {
			return nil, err
		}
		updated.Date = *req.Date
	}
	if req.Time != nil {
		clock, err := NormalizeClock(*req.Time)
		if err != nil {
			return nil, err
		}
		updated.Time = clock
	}
	if req.LocationName != nil {
		updated.LocationName = *req.LocationName
	}
	if req.ClearCoordinates {
		updated.Latitude = nil
		updated.Longitude = nil
	} else if req.Latitude != nil || req.Longitude != nil {
		if err := ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
			return nil, err
		}
		updated.Latitude = req.Latitude
		updated.Longitude = req.Longitude
	}
	if req.Mode != nil {
		mode, err := ParseMode(*req.Mode)
		if err != nil {
			return nil, err
		}
		updated.Mode = mode
	}
	if req.Tag != nil {
		tag, err := validateTag(*req.Tag)
		if err != nil {
			return nil, err
		}
		updated.Tag = tag
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	updated.ModifiedAt = time.Now()

	if err := s.activities.Update(ctx, tenantID, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("updating activity: %w", err)
	}
	return &updated, nil
}

// Delete removes an activity.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.activities.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

// ListByTrip returns a trip's activities, optionally filtered.
func (s *Service) ListByTrip(ctx context.Context, tenantID, tripID string, opts ListOptions) ([]Activity, error) {
	if _, err := s.trips.Get(ctx, tenantID, tripID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, trip.ErrTripNotFound
		}
		return nil, fmt.Errorf("loading trip: %w", err)
	}
	return s.activities.ListByTrip(ctx, tenantID, tripID, opts)
}
