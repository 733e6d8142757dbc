package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remvana/nestmap/internal/domain/activity"
)

type createActivityRequest struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	LocationName string   `json:"location_name,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	TravelMode   string   `json:"travel_mode,omitempty"`
	Tag          string   `json:"tag,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type updateActivityRequest struct {
	Title            *string  `json:"title,omitempty"`
	Date             *string  `json:"date,omitempty"`
	Time             *string  `json:"time,omitempty"`
	LocationName     *string  `json:"location_name,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	ClearCoordinates bool     `json:"clear_coordinates,omitempty"`
	TravelMode       *string  `json:"travel_mode,omitempty"`
	Tag              *string  `json:"tag,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req createActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.services.Activities.Create(r.Context(), tenantID, activity.CreateRequest{
		TripID:       chi.URLParam(r, "tripID"),
		Title:        req.Title,
		Date:         req.Date,
		Time:         req.Time,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Mode:         req.TravelMode,
		Tag:          req.Tag,
		Notes:        req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	opts := activity.ListOptions{Date: r.URL.Query().Get("date")}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		t := activity.Tag(tag)
		opts.Tag = &t
	}

	acts, err := s.services.Activities.ListByTrip(r.Context(), tenantID, chi.URLParam(r, "tripID"), opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if acts == nil {
		acts = []activity.Activity{}
	}
	writeJSON(w, http.StatusOK, acts)
}

func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req updateActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.services.Activities.Update(r.Context(), tenantID, activity.UpdateRequest{
		ID:               chi.URLParam(r, "activityID"),
		Title:            req.Title,
		Date:             req.Date,
		Time:             req.Time,
		LocationName:     req.LocationName,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		ClearCoordinates: req.ClearCoordinates,
		Mode:             req.TravelMode,
		Tag:              req.Tag,
		Notes:            req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	if err := s.services.Activities.Delete(r.Context(), tenantID, chi.URLParam(r, "activityID")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetItinerary(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	it, err := s.services.Itinerary.BuildForTrip(r.Context(), tenantID, chi.URLParam(r, "tripID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}
