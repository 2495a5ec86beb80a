package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all environment routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/environment", func(r chi.Router) {
		r.Get("/", h.HandleOverview)
		r.Get("/air-quality", h.HandleAirQuality)
	})
}
