package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/remvana/nestmap/internal/domain/itinerary"
)

// PublisherMetrics records publish outcomes and connection state.
type PublisherMetrics interface {
	EventPublishedInc()
	EventPublishErrInc()
	SetConnected(connected bool)
}

// NATSPublisher publishes itinerary conflict events to NATS subjects of the
// form <prefix>.trip.<tripID>.conflicts.
type NATSPublisher struct {
	nc            *nats.Conn
	subjectPrefix string
	metrics       PublisherMetrics
	logger        *slog.Logger
}

// NewNATSPublisher connects to NATS. metrics and logger may be nil.
func NewNATSPublisher(url, subjectPrefix string, metrics PublisherMetrics, logger *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("nestmap"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			if metrics != nil {
				metrics.SetConnected(false)
			}
			if logger != nil {
				logger.Warn("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			if metrics != nil {
				metrics.SetConnected(true)
			}
			if logger != nil {
				logger.Info("nats reconnected")
			}
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if metrics != nil {
				metrics.SetConnected(false)
			}
			if logger != nil {
				logger.Info("nats closed")
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}
	if metrics != nil {
		metrics.SetConnected(true)
	}
	return &NATSPublisher{
		nc:            nc,
		subjectPrefix: subjectPrefix,
		metrics:       metrics,
		logger:        logger,
	}, nil
}

// ConflictDetected implements itinerary.EventPublisher.
func (p *NATSPublisher) ConflictDetected(_ context.Context, ev itinerary.ConflictEvent) error {
	subject := fmt.Sprintf("%s.trip.%s.conflicts", p.subjectPrefix, subjectToken(ev.TripID))
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling conflict event: %w", err)
	}

	err = p.nc.Publish(subject, data)
	if p.metrics != nil {
		if err != nil {
			p.metrics.EventPublishErrInc()
		} else {
			p.metrics.EventPublishedInc()
		}
	}
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}
	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

// subjectToken strips characters NATS subjects cannot carry.
func subjectToken(s string) string {
	s = strings.TrimSpace(s)
	repl := strings.NewReplacer(" ", "_", ".", "_", ">", "_", "*", "_", "/", "_", "\t", "_")
	s = repl.Replace(s)
	if s == "" {
		s = "_"
	}
	return s
}
