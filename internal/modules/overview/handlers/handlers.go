// Package handlers provides HTTP handlers for the overview section.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/modules/overview"
)

// Handler handles overview HTTP requests
type Handler struct {
	service *overview.Service
	log     zerolog.Logger
}

// NewHandler creates a new overview handler
func NewHandler(service *overview.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "overview").Logger(),
	}
}

// HandleSummary handles GET /api/overview
// Returns headline KPIs and the SDG progress snapshot.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Summary())
}

// HandleSDG handles GET /api/overview/sdg
// Returns only the SDG progress snapshot.
func (h *Handler) HandleSDG(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"sdg_progress": h.service.Summary().SDG,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
