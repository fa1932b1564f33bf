package timecost

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"timetobuy/internal/currency"
	"timetobuy/internal/handlers"
	"timetobuy/internal/observability"
	"timetobuy/internal/settings"
)

// tracer is the timecost domain's OpenTelemetry tracer.
var tracer = otel.Tracer("timecost")

// SettingsLoader supplies the remembered inputs.
type SettingsLoader interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// SettingsSaver persists inputs without blocking the caller.
type SettingsSaver interface {
	Save(s settings.Settings)
}

// Handler serves the calculation endpoint.
type Handler struct {
	settings SettingsLoader
	saver    SettingsSaver
}

// NewHandler returns a Handler that pre-fills blank inputs from loader and
// remembers successful inputs through saver.
func NewHandler(loader SettingsLoader, saver SettingsSaver) *Handler {
	return &Handler{settings: loader, saver: saver}
}

// Calculate handles POST /timecost/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "timecost.calculate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	// Blank fields are pre-filled from what the user entered last time.
	typed := settings.Settings{HourlyRate: req.HourlyRate, TaxRate: req.TaxRate, Currency: req.Currency}
	inputs := typed.Merge(h.loadSettings(ctx, logger))

	start := time.Now()
	res := Calculate(Input{
		Price:      req.Price,
		HourlyRate: inputs.HourlyRate,
		TaxRate:    inputs.TaxRate,
		IsNeed:     req.IsNeed,
	})
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if !res.OK() {
		h.writeFailure(ctx, span, logger, res.Failure, elapsed, w)
		return
	}

	b := res.Success
	code := currency.Normalize(inputs.Currency)

	attrs := metric.WithAttributes(attribute.String("outcome", "ok"))
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)
	hoursGauge.Record(ctx, b.AfterTaxHours, metric.WithAttributes(attribute.String("basis", "after_tax")))
	hoursGauge.Record(ctx, b.PreTaxHours, metric.WithAttributes(attribute.String("basis", "pre_tax")))

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("pre_tax_hours", b.PreTaxHours),
		attribute.Float64("after_tax_hours", b.AfterTaxHours),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.Float64("timecost.price", b.Price),
		attribute.Float64("timecost.hourly_rate", b.HourlyRate),
		attribute.Float64("timecost.tax_rate", b.TaxRate),
		attribute.String("timecost.currency", code),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("timecost calculation completed",
		zap.Float64("price", b.Price),
		zap.Float64("hourly_rate", b.HourlyRate),
		zap.Float64("tax_rate", b.TaxRate),
		zap.Float64("pre_tax_hours", b.PreTaxHours),
		zap.Float64("after_tax_hours", b.AfterTaxHours),
		zap.String("currency", code),
		zap.String("request_id", requestID),
	)

	// Remember what was used. Persistence failures never reach the user.
	h.saver.Save(settings.Settings{
		HourlyRate: inputs.HourlyRate,
		TaxRate:    inputs.TaxRate,
		Currency:   code,
	})

	handlers.WriteJSON(w, http.StatusOK, CalculateResponse{
		Price:      b.Price,
		PriceLabel: currency.FormatPrice(code, b.Price),
		Currency:   code,
		HourlyRate: b.HourlyRate,
		TaxRate:    b.TaxRate,
		IsNeed:     b.IsNeed,
		PreTax:     newWorkTime(b.PreTaxHours, b.PreTax),
		AfterTax:   newWorkTime(b.AfterTaxHours, b.AfterTax),
	})
}

// loadSettings returns empty settings when the store is unavailable.
func (h *Handler) loadSettings(ctx context.Context, logger *zap.Logger) settings.Settings {
	s, err := h.settings.Load(ctx)
	if err != nil {
		logger.Warn("settings unavailable, using typed values only",
			zap.Error(err),
			zap.String("request_id", observability.RequestIDFromContext(ctx)),
		)
		return settings.Settings{}
	}
	return s
}

// writeFailure reports a rejected input. It is a user error, not a fault, so
// it is logged at info and does not mark the span as failed.
func (h *Handler) writeFailure(ctx context.Context, span trace.Span, logger *zap.Logger, f *Failure, elapsed float64, w http.ResponseWriter) {
	attrs := metric.WithAttributes(
		attribute.String("outcome", "rejected"),
		attribute.String("kind", f.Kind()),
	)
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("calculation.rejected", trace.WithAttributes(
		attribute.String("kind", f.Kind()),
	))
	span.SetAttributes(attribute.String("timecost.failure", f.Kind()))

	logger.Info("timecost calculation rejected",
		zap.String("kind", f.Kind()),
		zap.String("message", f.Message),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusUnprocessableEntity, FailureResponse{
		Error: f.Message,
		Kind:  f.Kind(),
	})
}
