package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Trips table
CREATE TABLE trips (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    title TEXT NOT NULL,
    city TEXT,
    country TEXT,
    description TEXT,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    modified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_tenant_trips ON trips(tenant_id);

-- Activities table
CREATE TABLE activities (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    trip_id TEXT NOT NULL,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    time TEXT NOT NULL,
    location_name TEXT,
    latitude REAL,
    longitude REAL,
    travel_mode TEXT NOT NULL DEFAULT 'walking'
        CHECK(travel_mode IN ('walking', 'driving', 'transit')),
    tag TEXT,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    modified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
);
CREATE INDEX idx_tenant_activities ON activities(tenant_id);
CREATE INDEX idx_trip_activities ON activities(trip_id);
CREATE INDEX idx_activity_date ON activities(date);

-- Published templates (marketplace)
CREATE TABLE templates (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    title TEXT NOT NULL,
    city TEXT,
    country TEXT,
    description TEXT,
    duration_days INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_tenant_templates ON templates(tenant_id);
CREATE INDEX idx_template_city ON templates(city);

-- Template activities, anchored by day offset
CREATE TABLE template_activities (
    template_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    day_offset INTEGER NOT NULL,
    time TEXT NOT NULL,
    title TEXT NOT NULL,
    location_name TEXT,
    latitude REAL,
    longitude REAL,
    travel_mode TEXT NOT NULL DEFAULT 'walking',
    tag TEXT,
    notes TEXT,
    PRIMARY KEY (template_id, position),
    FOREIGN KEY (template_id) REFERENCES templates(id) ON DELETE CASCADE
);

-- API keys for authentication
CREATE TABLE api_keys (
    key_hash TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_used TIMESTAMP,
    description TEXT
);
CREATE INDEX idx_tenant_keys ON api_keys(tenant_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
