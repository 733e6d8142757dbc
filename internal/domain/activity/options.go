package activity

// ListOptions provides filtering options for listing a trip's activities.
type ListOptions struct {
	Date string
	Tag  *Tag
}
