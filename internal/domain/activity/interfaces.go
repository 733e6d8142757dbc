package activity

import (
	"context"

	"github.com/remvana/nestmap/internal/domain/trip"
)

// Repository provides persistence operations for activities.
type Repository interface {
	Create(ctx context.Context, tenantID string, act *Activity) error
	Get(ctx context.Context, tenantID, id string) (*Activity, error)
	Update(ctx context.Context, tenantID string, act *Activity) error
	Delete(ctx context.Context, tenantID, id string) error
	ListByTrip(ctx context.Context, tenantID, tripID string, opts ListOptions) ([]Activity, error)
}

// TripRepository provides the trip lookups the activity service needs.
type TripRepository interface {
	Get(ctx context.Context, tenantID, id string) (*trip.Trip, error)
}
