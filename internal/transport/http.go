package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/itinerary"
	"github.com/remvana/nestmap/internal/domain/template"
	"github.com/remvana/nestmap/internal/domain/trip"
)

// Services bundles the domain services the router dispatches to.
type Services struct {
	Trips      *trip.Service
	Activities *activity.Service
	Itinerary  *itinerary.Service
	Templates  *template.Service
}

// Options carries the optional transport concerns.
type Options struct {
	Logger         *slog.Logger
	Observer       RequestObserver
	MetricsHandler http.Handler
}

// Server wires HTTP handlers.
type Server struct {
	services Services
}

// NewServer creates the HTTP router with middleware. authMiddleware may be
// nil to disable authentication (tests, local development).
func NewServer(services Services, authMiddleware func(http.Handler) http.Handler, opts Options) *chi.Mux {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware(opts.Observer))
	r.Use(RequestLogger(opts.Logger))

	srv := &Server{services: services}

	r.Get("/health", srv.handleHealth)
	if opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}

		r.Route("/trips", func(r chi.Router) {
			r.Post("/", srv.handleCreateTrip)
			r.Get("/", srv.handleListTrips)
			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", srv.handleGetTrip)
				r.Put("/", srv.handleUpdateTrip)
				r.Delete("/", srv.handleDeleteTrip)
				r.Post("/activities", srv.handleCreateActivity)
				r.Get("/activities", srv.handleListActivities)
				r.Get("/itinerary", srv.handleGetItinerary)
				r.Post("/publish", srv.handlePublishTemplate)
			})
		})

		r.Route("/activities/{activityID}", func(r chi.Router) {
			r.Put("/", srv.handleUpdateActivity)
			r.Delete("/", srv.handleDeleteActivity)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", srv.handleListTemplates)
			r.Route("/{templateID}", func(r chi.Router) {
				r.Get("/", srv.handleGetTemplate)
				r.Delete("/", srv.handleDeleteTemplate)
				r.Post("/apply", srv.handleApplyTemplate)
			})
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func tenant(w http.ResponseWriter, r *http.Request) (string, bool) {
	tenantID, ok := TenantFromContext(r.Context())
	if !ok || tenantID == "" {
		writeError(w, http.StatusUnauthorized, "missing tenant")
		return "", false
	}
	return tenantID, true
}
