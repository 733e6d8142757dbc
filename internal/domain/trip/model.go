package trip

import "time"

// Trip is a planned journey owned by a tenant: a destination plus a date
// range that its activities are scheduled within.
type Trip struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Title       string    `json:"title"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// TripSummary is a lightweight representation for listing.
type TripSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	City          string    `json:"city,omitempty"`
	Country       string    `json:"country,omitempty"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	ActivityCount int       `json:"activity_count"`
	CreatedAt     time.Time `json:"created_at"`
}
