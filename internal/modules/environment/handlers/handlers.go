// Package handlers provides HTTP handlers for the environment section.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/modules/environment"
)

// Handler handles environment HTTP requests
type Handler struct {
	service *environment.Service
	log     zerolog.Logger
}

// NewHandler creates a new environment handler
func NewHandler(service *environment.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "environment").Logger(),
	}
}

// HandleOverview handles GET /api/environment
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Overview())
}

// HandleAirQuality handles GET /api/environment/air-quality
func (h *Handler) HandleAirQuality(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.AirQuality())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
