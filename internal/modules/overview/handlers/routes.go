package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all overview routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/overview", func(r chi.Router) {
		r.Get("/", h.HandleSummary)
		r.Get("/sdg", h.HandleSDG)
	})
}
