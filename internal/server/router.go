package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"timetobuy/internal/currency"
	"timetobuy/internal/handlers"
	"timetobuy/internal/observability"
	"timetobuy/internal/settings"
	"timetobuy/internal/timecost"
)

// Deps are the long-lived collaborators the routes share.
type Deps struct {
	Settings settings.Store
	Saver    *settings.Saver
}

// NewRouter builds the chi router with request-id, tracing and logging
// middleware and mounts every endpoint.
func NewRouter(deps Deps) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	timecost.NewHandler(deps.Settings, deps.Saver).RegisterRoutes(r)
	settings.NewHandler(deps.Settings, deps.Saver).RegisterRoutes(r)
	currency.RegisterRoutes(r)

	return r
}
