package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/remvana/nestmap/internal/domain/trip"
	"github.com/remvana/nestmap/internal/repository"
)

// TripRepository implements trip.Repository for SQLite
type TripRepository struct {
	db *DB
}

var _ trip.Repository = (*TripRepository)(nil)

// NewTripRepository creates a new TripRepository
func NewTripRepository(db *DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create inserts a new trip
func (r *TripRepository) Create(ctx context.Context, tenantID string, t *trip.Trip) error {
	query := `
		INSERT INTO trips (
			id, tenant_id, title, city, country, description,
			start_date, end_date, created_at, modified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		tenantID,
		t.Title,
		t.City,
		t.Country,
		t.Description,
		t.StartDate,
		t.EndDate,
		t.CreatedAt,
		t.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// Get retrieves a trip by ID
func (r *TripRepository) Get(ctx context.Context, tenantID, id string) (*trip.Trip, error) {
	query := `
		SELECT id, tenant_id, title, city, country, description,
		       start_date, end_date, created_at, modified_at
		FROM trips
		WHERE id = ? AND tenant_id = ?
	`

	var t trip.Trip
	var city, country, description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(
		&t.ID,
		&t.TenantID,
		&t.Title,
		&city,
		&country,
		&description,
		&t.StartDate,
		&t.EndDate,
		&t.CreatedAt,
		&t.ModifiedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	t.City = city.String
	t.Country = country.String
	t.Description = description.String
	return &t, nil
}

// Update updates a trip
func (r *TripRepository) Update(ctx context.Context, tenantID string, t *trip.Trip) error {
	query := `
		UPDATE trips
		SET title = ?, city = ?, country = ?, description = ?,
		    start_date = ?, end_date = ?, modified_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.City,
		t.Country,
		t.Description,
		t.StartDate,
		t.EndDate,
		t.ModifiedAt,
		t.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a trip; activities cascade via the schema.
func (r *TripRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM trips WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns trip summaries with activity counts, newest first
func (r *TripRepository) List(ctx context.Context, tenantID string) ([]trip.TripSummary, error) {
	query := `
		SELECT t.id, t.title, t.city, t.country, t.start_date, t.end_date,
		       COUNT(a.id), t.created_at
		FROM trips t
		LEFT JOIN activities a ON a.trip_id = t.id
		WHERE t.tenant_id = ?
		GROUP BY t.id
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var summaries []trip.TripSummary
	for rows.Next() {
		var s trip.TripSummary
		var city, country sql.NullString
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&city,
			&country,
			&s.StartDate,
			&s.EndDate,
			&s.ActivityCount,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip summary: %w", err)
		}
		s.City = city.String
		s.Country = country.String
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trip rows: %w", err)
	}
	return summaries, nil
}
