package template

import (
	"time"

	"github.com/remvana/nestmap/internal/domain/activity"
)

// Template is a published, reusable snapshot of a trip. Activities are
// stored with day offsets relative to the trip's first scheduled day so the
// template can be applied at any start date.
type Template struct {
	ID           string             `json:"id"`
	TenantID     string             `json:"tenant_id"`
	Title        string             `json:"title"`
	City         string             `json:"city,omitempty"`
	Country      string             `json:"country,omitempty"`
	Description  string             `json:"description,omitempty"`
	DurationDays int                `json:"duration_days"`
	CreatedAt    time.Time          `json:"created_at"`
	Activities   []TemplateActivity `json:"activities"`
}

// TemplateActivity is one activity within a template, anchored by day offset
// instead of an absolute date.
type TemplateActivity struct {
	DayOffset    int                 `json:"day_offset"`
	Time         string              `json:"time"`
	Title        string              `json:"title"`
	LocationName string              `json:"location_name,omitempty"`
	Latitude     *float64            `json:"latitude,omitempty"`
	Longitude    *float64            `json:"longitude,omitempty"`
	Mode         activity.TravelMode `json:"travel_mode"`
	Tag          activity.Tag        `json:"tag,omitempty"`
	Notes        string              `json:"notes,omitempty"`
}

// TemplateSummary is a lightweight representation for the marketplace list.
type TemplateSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	City          string    `json:"city,omitempty"`
	Country       string    `json:"country,omitempty"`
	DurationDays  int       `json:"duration_days"`
	ActivityCount int       `json:"activity_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListOptions provides paging for the marketplace list.
type ListOptions struct {
	City   string
	Limit  int
	Offset int
}
