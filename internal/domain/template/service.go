package template

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/trip"
	"github.com/remvana/nestmap/internal/repository"
)

// Service handles the template marketplace: publishing trips as templates
// and applying templates to create new trips.
type Service struct {
	templates  Repository
	trips      TripRepository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new template service.
func NewService(templates Repository, trips TripRepository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{
		templates:  templates,
		trips:      trips,
		activities: activities,
		logger:     logger,
	}
}

// PublishRequest describes publishing a trip as a marketplace template.
type PublishRequest struct {
	TripID      string
	Title       string
	Description string
}

// ApplyRequest describes instantiating a template as a new trip.
type ApplyRequest struct {
	TemplateID string
	StartDate  string
	Title      string
}

// Publish snapshots a trip and its activities into a template. Activity
// dates become offsets from the trip's earliest scheduled day.
func (s *Service) Publish(ctx context.Context, tenantID string, req PublishRequest) (*Template, error) {
	if strings.TrimSpace(req.TripID) == "" {
		return nil, ErrInvalidInput
	}

	src, err := s.trips.Get(ctx, tenantID, req.TripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, trip.ErrTripNotFound
		}
		return nil, fmt.Errorf("loading trip: %w", err)
	}

	acts, err := s.activities.ListByTrip(ctx, tenantID, req.TripID, activity.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	if len(acts) == 0 {
		return nil, ErrEmptyTrip
	}

	anchor, err := earliestDate(acts)
	if err != nil {
		return nil, err
	}

	tmplActs := make([]TemplateActivity, 0, len(acts))
	maxOffset := 0
	for _, act := range acts {
		date, err := time.Parse(activity.DateLayout, act.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: activity %s has date %q", ErrInvalidInput, act.ID, act.Date)
		}
		offset := daysBetween(anchor, date)
		if offset > maxOffset {
			maxOffset = offset
		}
		tmplActs = append(tmplActs, TemplateActivity{
			DayOffset:    offset,
			Time:         act.Time,
			Title:        act.Title,
			LocationName: act.LocationName,
			Latitude:     act.Latitude,
			Longitude:    act.Longitude,
			Mode:         act.Mode,
			Tag:          act.Tag,
			Notes:        act.Notes,
		})
	}
	sort.SliceStable(tmplActs, func(i, j int) bool {
		if tmplActs[i].DayOffset != tmplActs[j].DayOffset {
			return tmplActs[i].DayOffset < tmplActs[j].DayOffset
		}
		return tmplActs[i].Time < tmplActs[j].Time
	})

	title := req.Title
	if strings.TrimSpace(title) == "" {
		title = src.Title
	}
	description := req.Description
	if strings.TrimSpace(description) == "" {
		description = src.Description
	}

	tmpl := &Template{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		Title:        title,
		City:         src.City,
		Country:      src.Country,
		Description:  description,
		DurationDays: maxOffset + 1,
		CreatedAt:    time.Now(),
		Activities:   tmplActs,
	}

	if err := s.templates.Create(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}
	return tmpl, nil
}

// Get fetches a template with its activities.
func (s *Service) Get(ctx context.Context, id string) (*Template, error) {
	tmpl, err := s.templates.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("getting template: %w", err)
	}
	return tmpl, nil
}

// List returns marketplace template summaries.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]TemplateSummary, error) {
	return s.templates.List(ctx, opts)
}

// Delete removes a template. Only the publishing tenant may delete it.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	tmpl, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if tmpl.TenantID != tenantID {
		return ErrNotOwner
	}
	if err := s.templates.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}

// Apply creates a new trip from a template, anchored at the given start
// date. Template activities keep their relative day spacing.
func (s *Service) Apply(ctx context.Context, tenantID string, req ApplyRequest) (*trip.Trip, error) {
	if strings.TrimSpace(req.TemplateID) == "" {
		return nil, ErrInvalidInput
	}
	start, err := time.Parse(activity.DateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q", ErrInvalidInput, req.StartDate)
	}

	tmpl, err := s.Get(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if strings.TrimSpace(title) == "" {
		title = tmpl.Title
	}

	now := time.Now()
	end := start.AddDate(0, 0, tmpl.DurationDays-1)
	newTrip := &trip.Trip{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Title:       title,
		City:        tmpl.City,
		Country:     tmpl.Country,
		Description: tmpl.Description,
		StartDate:   start.Format(activity.DateLayout),
		EndDate:     end.Format(activity.DateLayout),
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if err := s.trips.Create(ctx, tenantID, newTrip); err != nil {
		return nil, fmt.Errorf("creating trip: %w", err)
	}

	for _, ta := range tmpl.Activities {
		act := &activity.Activity{
			ID:           uuid.NewString(),
			TenantID:     tenantID,
			TripID:       newTrip.ID,
			Title:        ta.Title,
			Date:         start.AddDate(0, 0, ta.DayOffset).Format(activity.DateLayout),
			Time:         ta.Time,
			LocationName: ta.LocationName,
			Latitude:     ta.Latitude,
			Longitude:    ta.Longitude,
			Mode:         ta.Mode,
			Tag:          ta.Tag,
			Notes:        ta.Notes,
			CreatedAt:    now,
			ModifiedAt:   now,
		}
		if err := s.activities.Create(ctx, tenantID, act); err != nil {
			return nil, fmt.Errorf("creating activity from template: %w", err)
		}
	}

	return newTrip, nil
}

func earliestDate(acts []activity.Activity) (time.Time, error) {
	var earliest time.Time
	found := false
	for _, act := range acts {
		date, err := time.Parse(activity.DateLayout, act.Date)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: activity %s has date %q", ErrInvalidInput, act.ID, act.Date)
		}
		if !found || date.Before(earliest) {
			earliest = date
			found = true
		}
	}
	return earliest, nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
