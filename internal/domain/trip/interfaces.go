package trip

import "context"

// Repository provides persistence operations for trips.
type Repository interface {
	Create(ctx context.Context, tenantID string, t *Trip) error
	Get(ctx context.Context, tenantID, id string) (*Trip, error)
	Update(ctx context.Context, tenantID string, t *Trip) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string) ([]TripSummary, error)
}
