package currency

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"timetobuy/internal/handlers"
)

// List handles GET /currencies
func List(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, map[string]any{
		"default":    DefaultCode,
		"currencies": All(),
	})
}

// RegisterRoutes mounts the currency catalogue endpoint.
func RegisterRoutes(r chi.Router) {
	r.Get("/currencies", List)
}
