package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/remvana/nestmap/internal/domain/template"
)

type publishTemplateRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type applyTemplateRequest struct {
	StartDate string `json:"start_date"`
	Title     string `json:"title,omitempty"`
}

func (s *Server) handlePublishTemplate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req publishTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tmpl, err := s.services.Templates.Publish(r.Context(), tenantID, template.PublishRequest{
		TripID:      chi.URLParam(r, "tripID"),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tmpl)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	if _, ok := tenant(w, r); !ok {
		return
	}
	opts := template.ListOptions{City: r.URL.Query().Get("city")}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			opts.Limit = limit
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil && offset > 0 {
			opts.Offset = offset
		}
	}

	templates, err := s.services.Templates.List(r.Context(), opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if templates == nil {
		templates = []template.TemplateSummary{}
	}
	writeJSON(w, http.StatusOK, templates)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	if _, ok := tenant(w, r); !ok {
		return
	}
	tmpl, err := s.services.Templates.Get(r.Context(), chi.URLParam(r, "templateID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	if err := s.services.Templates.Delete(r.Context(), tenantID, chi.URLParam(r, "templateID")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req applyTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.services.Templates.Apply(r.Context(), tenantID, template.ApplyRequest{
		TemplateID: chi.URLParam(r, "templateID"),
		StartDate:  req.StartDate,
		Title:      req.Title,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
