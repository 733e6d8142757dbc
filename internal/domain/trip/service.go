package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/remvana/nestmap/internal/repository"
)

// Service handles trip operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new trip service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines trip creation inputs.
type CreateRequest struct {
	Title       string
	City        string
	Country     string
	Description string
	StartDate   string
	EndDate     string
}

// UpdateRequest describes a partial trip update. Nil fields keep their
// current value.
type UpdateRequest struct {
	ID          string
	Title       *string
	City        *string
	Country     *string
	Description *string
	StartDate   *string
	EndDate     *string
}

// Create creates a new trip.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Trip, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &Trip{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Title:       req.Title,
		City:        req.City,
		Country:     req.Country,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   now,
		ModifiedAt:  now,
	}

	if err := s.repo.Create(ctx, tenantID, t); err != nil {
		return nil, fmt.Errorf("creating trip: %w", err)
	}
	return t, nil
}

// Get fetches a trip by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Trip, error) {
	t, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("getting trip: %w", err)
	}
	return t, nil
}

// Update applies a partial update, revalidating the date range.
func (s *Service) Update(ctx context.Context, tenantID string, req UpdateRequest) (*Trip, error) {
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
	if req.City != nil {
		updated.City = *req.City
	}
	if req.Country != nil {
		updated.Country = *req.Country
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.StartDate != nil {
		updated.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		updated.EndDate = *req.EndDate
	}
	if err := ValidateDateRange(updated.StartDate, updated.EndDate); err != nil {
		return nil, err
	}
	updated.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, tenantID, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("updating trip: %w", err)
	}
	return &updated, nil
}

// Delete removes a trip and, through the schema's cascade, its activities.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTripNotFound
		}
		return fmt.Errorf("deleting trip: %w", err)
	}
	return nil
}

// List returns trip summaries for a tenant.
func (s *Service) List(ctx context.Context, tenantID string) ([]TripSummary, error) {
	return s.repo.List(ctx, tenantID)
}
