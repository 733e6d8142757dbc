package notify

import (
	"context"

	"github.com/remvana/nestmap/internal/domain/itinerary"
)

// Noop discards all events. Wired when no NATS URL is configured.
type Noop struct{}

// ConflictDetected implements itinerary.EventPublisher.
func (Noop) ConflictDetected(context.Context, itinerary.ConflictEvent) error {
	return nil
}
