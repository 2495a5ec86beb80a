// Package handlers provides HTTP handlers for the engagement section.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/modules/engagement"
)

// Handler handles engagement HTTP requests
type Handler struct {
	service *engagement.Service
	log     zerolog.Logger
}

// NewHandler creates a new engagement handler
func NewHandler(service *engagement.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "engagement").Logger(),
	}
}

// RegisterRoutes registers all engagement routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/engagement", func(r chi.Router) {
		r.Get("/", h.HandleOverview)
	})
}

// HandleOverview handles GET /api/engagement
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
