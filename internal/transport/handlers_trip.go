package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remvana/nestmap/internal/domain/trip"
)

type createTripRequest struct {
	Title       string `json:"title"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type updateTripRequest struct {
	Title       *string `json:"title,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.services.Trips.Create(r.Context(), tenantID, trip.CreateRequest{
		Title:       req.Title,
		City:        req.City,
		Country:     req.Country,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	trips, err := s.services.Trips.List(r.Context(), tenantID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if trips == nil {
		trips = []trip.TripSummary{}
	}
	writeJSON(w, http.StatusOK, trips)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	t, err := s.services.Trips.Get(r.Context(), tenantID, chi.URLParam(r, "tripID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req updateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.services.Trips.Update(r.Context(), tenantID, trip.UpdateRequest{
		ID:          chi.URLParam(r, "tripID"),
		Title:       req.Title,
		City:        req.City,
		Country:     req.Country,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	if err := s.services.Trips.Delete(r.Context(), tenantID, chi.URLParam(r, "tripID")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
