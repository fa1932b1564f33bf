package timecost

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the timecost endpoints under /timecost.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/timecost", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
	})
}
