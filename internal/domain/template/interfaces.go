package template

import (
	"context"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/trip"
)

// Repository provides persistence operations for templates. Get and List are
// not tenant-scoped: published templates are public marketplace entries.
type Repository interface {
	Create(ctx context.Context, tmpl *Template) error
	Get(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context, opts ListOptions) ([]TemplateSummary, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// TripRepository provides the trip operations publishing and applying need.
type TripRepository interface {
	Get(ctx context.Context, tenantID, id string) (*trip.Trip, error)
	Create(ctx context.Context, tenantID string, t *trip.Trip) error
}

// ActivityRepository provides the activity operations publishing and
// applying need.
type ActivityRepository interface {
	ListByTrip(ctx context.Context, tenantID, tripID string, opts activity.ListOptions) ([]activity.Activity, error)
	Create(ctx context.Context, tenantID string, act *activity.Activity) error
}
