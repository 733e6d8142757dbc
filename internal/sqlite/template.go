package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/template"
	"github.com/remvana/nestmap/internal/repository"
)

// TemplateRepository implements template.Repository for SQLite
type TemplateRepository struct {
	db *DB
}

var _ template.Repository = (*TemplateRepository)(nil)

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create inserts a template and its activities in one transaction
func (r *TemplateRepository) Create(ctx context.Context, tmpl *template.Template) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO templates (
			id, tenant_id, title, city, country, description,
			duration_days, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		tmpl.ID,
		tmpl.TenantID,
		tmpl.Title,
		tmpl.City,
		tmpl.Country,
		tmpl.Description,
		tmpl.DurationDays,
		tmpl.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	for i, ta := range tmpl.Activities {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO template_activities (
				template_id, position, day_offset, time, title, location_name,
				latitude, longitude, travel_mode, tag, notes
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			tmpl.ID,
			i,
			ta.DayOffset,
			ta.Time,
			ta.Title,
			ta.LocationName,
			ta.Latitude,
			ta.Longitude,
			ta.Mode,
			ta.Tag,
			ta.Notes,
		)
		if err != nil {
			return fmt.Errorf("failed to create template activity: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit template: %w", err)
	}
	return nil
}

// Get retrieves a template with its activities
func (r *TemplateRepository) Get(ctx context.Context, id string) (*template.Template, error) {
	var tmpl template.Template
	var city, country, description sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, tenant_id, title, city, country, description,
		       duration_days, created_at
		FROM templates
		WHERE id = ?
	`, id).Scan(
		&tmpl.ID,
		&tmpl.TenantID,
		&tmpl.Title,
		&city,
		&country,
		&description,
		&tmpl.DurationDays,
		&tmpl.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	tmpl.City = city.String
	tmpl.Country = country.String
	tmpl.Description = description.String

	rows, err := r.db.QueryContext(ctx, `
		SELECT day_offset, time, title, location_name, latitude, longitude,
		       travel_mode, tag, notes
		FROM template_activities
		WHERE template_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list template activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ta template.TemplateActivity
		var locationName, tag, notes sql.NullString
		var lat, lon sql.NullFloat64
		if err := rows.Scan(
			&ta.DayOffset,
			&ta.Time,
			&ta.Title,
			&locationName,
			&lat,
			&lon,
			&ta.Mode,
			&tag,
			&notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan template activity: %w", err)
		}
		ta.LocationName = locationName.String
		ta.Tag = activity.Tag(tag.String)
		ta.Notes = notes.String
		if lat.Valid {
			ta.Latitude = &lat.Float64
		}
		if lon.Valid {
			ta.Longitude = &lon.Float64
		}
		tmpl.Activities = append(tmpl.Activities, ta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template activity rows: %w", err)
	}
	return &tmpl, nil
}

// List returns marketplace template summaries, newest first
func (r *TemplateRepository) List(ctx context.Context, opts template.ListOptions) ([]template.TemplateSummary, error) {
	query := `
		SELECT t.id, t.title, t.city, t.country, t.duration_days,
		       COUNT(ta.template_id), t.created_at
		FROM templates t
		LEFT JOIN template_activities ta ON ta.template_id = t.id
	`
	var args []any
	if opts.City != "" {
		query += " WHERE t.city = ?"
		args = append(args, opts.City)
	}
	query += " GROUP BY t.id ORDER BY t.created_at DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	} else if opts.Offset > 0 {
		// OFFSET is only valid after a LIMIT clause; -1 means no limit.
		query += " LIMIT -1"
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var summaries []template.TemplateSummary
	for rows.Next() {
		var s template.TemplateSummary
		var city, country sql.NullString
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&city,
			&country,
			&s.DurationDays,
			&s.ActivityCount,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan template summary: %w", err)
		}
		s.City = city.String
		s.Country = country.String
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", err)
	}
	return summaries, nil
}

// Delete removes a template owned by the tenant; activities cascade
func (r *TemplateRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM templates WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
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
