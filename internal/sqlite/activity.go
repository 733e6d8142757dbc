package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/repository"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

var _ activity.Repository = (*ActivityRepository)(nil)

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts a new activity
func (r *ActivityRepository) Create(ctx context.Context, tenantID string, act *activity.Activity) error {
	query := `
		INSERT INTO activities (
			id, tenant_id, trip_id, title, date, time, location_name,
			latitude, longitude, travel_mode, tag, notes, created_at, modified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		act.ID,
		tenantID,
		act.TripID,
		act.Title,
		act.Date,
		act.Time,
		act.LocationName,
		act.Latitude,
		act.Longitude,
		act.Mode,
		act.Tag,
		act.Notes,
		act.CreatedAt,
		act.ModifiedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// Get retrieves an activity by ID
func (r *ActivityRepository) Get(ctx context.Context, tenantID, id string) (*activity.Activity, error) {
	query := `
		SELECT id, tenant_id, trip_id, title, date, time, location_name,
		       latitude, longitude, travel_mode, tag, notes, created_at, modified_at
		FROM activities
		WHERE id = ? AND tenant_id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id, tenantID)
	act, err := scanActivity(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return act, nil
}

// Update updates an activity
func (r *ActivityRepository) Update(ctx context.Context, tenantID string, act *activity.Activity) error {
	query := `
		UPDATE activities
		SET title = ?, date = ?, time = ?, location_name = ?,
		    latitude = ?, longitude = ?, travel_mode = ?, tag = ?, notes = ?,
		    modified_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		act.Title,
		act.Date,
		act.Time,
		act.LocationName,
		act.Latitude,
		act.Longitude,
		act.Mode,
		act.Tag,
		act.Notes,
		act.ModifiedAt,
		act.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
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

// Delete removes an activity
func (r *ActivityRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM activities WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
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

// ListByTrip returns a trip's activities ordered by date then time
func (r *ActivityRepository) ListByTrip(ctx context.Context, tenantID, tripID string, opts activity.ListOptions) ([]activity.Activity, error) {
	query := `
		SELECT id, tenant_id, trip_id, title, date, time, location_name,
		       latitude, longitude, travel_mode, tag, notes, created_at, modified_at
		FROM activities
		WHERE tenant_id = ? AND trip_id = ?
	`
	args := []any{tenantID, tripID}

	if opts.Date != "" {
		query += " AND date = ?"
		args = append(args, opts.Date)
	}
	if opts.Tag != nil {
		query += " AND tag = ?"
		args = append(args, *opts.Tag)
	}
	query += " ORDER BY date, time"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var acts []activity.Activity
	for rows.Next() {
		act, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		acts = append(acts, *act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}
	return acts, nil
}

func scanActivity(scan func(dest ...any) error) (*activity.Activity, error) {
	var act activity.Activity
	var locationName, tag, notes sql.NullString
	var lat, lon sql.NullFloat64
	err := scan(
		&act.ID,
		&act.TenantID,
		&act.TripID,
		&act.Title,
		&act.Date,
		&act.Time,
		&locationName,
		&lat,
		&lon,
		&act.Mode,
		&tag,
		&notes,
		&act.CreatedAt,
		&act.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	act.LocationName = locationName.String
	act.Tag = activity.Tag(tag.String)
	act.Notes = notes.String
	if lat.Valid {
		act.Latitude = &lat.Float64
	}
	if lon.Valid {
		act.Longitude = &lon.Float64
	}
	return &act, nil
}
