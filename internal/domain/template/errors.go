package template

import "errors"

var (
	// ErrTemplateNotFound indicates the template doesn't exist.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrInvalidInput indicates invalid input for template operations.
	ErrInvalidInput = errors.New("invalid template input")
	// ErrNotOwner indicates the caller does not own the template.
	ErrNotOwner = errors.New("template owned by another tenant")
	// ErrEmptyTrip indicates an attempt to publish a trip with no activities.
	ErrEmptyTrip = errors.New("trip has no activities to publish")
)
