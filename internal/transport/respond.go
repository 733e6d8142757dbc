package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/template"
	"github.com/remvana/nestmap/internal/domain/trip"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// writeDomainError maps domain sentinel errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trip.ErrTripNotFound),
		errors.Is(err, activity.ErrActivityNotFound),
		errors.Is(err, template.ErrTemplateNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, template.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, trip.ErrInvalidInput),
		errors.Is(err, trip.ErrInvalidDateRange),
		errors.Is(err, activity.ErrInvalidInput),
		errors.Is(err, activity.ErrInvalidDate),
		errors.Is(err, activity.ErrInvalidClock),
		errors.Is(err, activity.ErrInvalidMode),
		errors.Is(err, activity.ErrInvalidCoordinates),
		errors.Is(err, template.ErrInvalidInput),
		errors.Is(err, template.ErrEmptyTrip):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
