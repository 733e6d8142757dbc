package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the Prometheus registry and the service's instruments.
type Collector struct {
	reg *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration prometheus.Histogram

	ItineraryBuilds   prometheus.Counter
	BuildDuration     prometheus.Histogram
	ConflictsDetected prometheus.Counter

	EventsPublished   prometheus.Counter
	EventsPublishErrs prometheus.Counter
	NATSConnected     prometheus.Gauge
}

// NewCollector creates and registers all instruments on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nestmap_http_requests_total",
			Help: "HTTP requests by method, route pattern, and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nestmap_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}),
		ItineraryBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nestmap_itinerary_builds_total",
			Help: "Total itinerary builds.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nestmap_itinerary_build_duration_seconds",
			Help:    "Itinerary build latency.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		ConflictsDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nestmap_itinerary_conflicts_total",
			Help: "Total scheduling conflicts flagged during builds.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nestmap_events_published_total",
			Help: "Total conflict events published.",
		}),
		EventsPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nestmap_events_publish_errors_total",
			Help: "Total conflict event publish failures.",
		}),
		NATSConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nestmap_nats_connected",
			Help: "Whether the NATS connection is up (1) or down (0).",
		}),
	}

	reg.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.ItineraryBuilds,
		c.BuildDuration,
		c.ConflictsDetected,
		c.EventsPublished,
		c.EventsPublishErrs,
		c.NATSConnected,
	)
	return c
}

// Handler serves the registry for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// ObserveRequest implements transport.RequestObserver.
func (c *Collector) ObserveRequest(method, route string, status int, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.Observe(d.Seconds())
}

// ObserveBuild implements itinerary.Observer.
func (c *Collector) ObserveBuild(d time.Duration) {
	c.ItineraryBuilds.Inc()
	c.BuildDuration.Observe(d.Seconds())
}

// ConflictsInc implements itinerary.Observer.
func (c *Collector) ConflictsInc(n int) {
	c.ConflictsDetected.Add(float64(n))
}

// EventPublishedInc implements notify.PublisherMetrics.
func (c *Collector) EventPublishedInc() {
	c.EventsPublished.Inc()
}

// EventPublishErrInc implements notify.PublisherMetrics.
func (c *Collector) EventPublishErrInc() {
	c.EventsPublishErrs.Inc()
}

// SetConnected implements notify.PublisherMetrics.
func (c *Collector) SetConnected(connected bool) {
	if connected {
		c.NATSConnected.Set(1)
	} else {
		c.NATSConnected.Set(0)
	}
}
