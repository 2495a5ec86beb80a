// Package handlers provides HTTP handlers for the policy section.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/modules/policy"
)

// Handler handles policy HTTP requests
type Handler struct {
	service *policy.Service
	log     zerolog.Logger
}

// NewHandler creates a new policy handler
func NewHandler(service *policy.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "policy").Logger(),
	}
}

// RegisterRoutes registers all policy routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/policy", func(r chi.Router) {
		r.Get("/", h.HandleOverview)
	})
}

// HandleOverview handles GET /api/policy
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
