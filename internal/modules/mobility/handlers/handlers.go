// Package handlers provides HTTP handlers for the mobility section.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/modules/mobility"
)

// Handler handles mobility HTTP requests
type Handler struct {
	service *mobility.Service
	log     zerolog.Logger
}

// NewHandler creates a new mobility handler
func NewHandler(service *mobility.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "mobility").Logger(),
	}
}

// RegisterRoutes registers all mobility routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/mobility", func(r chi.Router) {
		r.Get("/", h.HandleOverview)
	})
}

// HandleOverview handles GET /api/mobility
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Overview())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
