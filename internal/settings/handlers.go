package settings

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"timetobuy/internal/currency"
	"timetobuy/internal/handlers"
	"timetobuy/internal/observability"
)

var tracer = otel.Tracer("settings")

// Handler serves the remembered settings over HTTP.
type Handler struct {
	store      Store
	saver      *Saver
	errCounter metric.Int64Counter
}

// NewHandler returns a Handler reading from store and writing through saver.
func NewHandler(store Store, saver *Saver) *Handler {
	errs, err := otel.Meter("settings").Int64Counter("settings.errors.total",
		metric.WithDescription("Settings requests rejected before reaching the store"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		observability.Logger.Warn("creating settings error counter", zap.Error(err))
		errs = noop.Int64Counter{}
	}
	return &Handler{store: store, saver: saver, errCounter: errs}
}

// Get handles GET /settings. Storage errors are logged and answered with
// empty settings.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := h.store.Load(ctx)
	if err != nil {
		observability.LoggerWithTrace(ctx).Warn("settings load failed",
			zap.Error(err),
			zap.String("request_id", observability.RequestIDFromContext(ctx)),
		)
		s = Settings{}
	}

	handlers.WriteJSON(w, http.StatusOK, s)
}

// Put handles PUT /settings. The write happens in the background, so the
// response is 202 whether or not storage later succeeds. A non-blank currency
// is stored in its canonical upper-case form.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "settings.put",
		trace.WithAttributes(attribute.String("request.id", observability.RequestIDFromContext(ctx))),
	)
	defer span.End()

	var s Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		observability.RecordError(ctx, span, logger, h.errCounter, "put_settings", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if strings.TrimSpace(s.Currency) != "" {
		s.Currency = currency.Normalize(s.Currency)
	}

	h.saver.Save(s)

	handlers.WriteJSON(w, http.StatusAccepted, s)
}

// RegisterRoutes mounts the settings endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Put)
	})
}
