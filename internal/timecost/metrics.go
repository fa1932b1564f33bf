package timecost

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialised once via InitMetrics().
var (
	calcCounter   metric.Int64Counter
	calcHistogram metric.Float64Histogram
	errorCounter  metric.Int64Counter
	hoursGauge    metric.Float64Gauge
)

// InitMetrics registers the timecost OTel instruments. Call this once at
// startup, after observability.InitMetrics when telemetry is enabled.
func InitMetrics() error {
	meter := otel.Meter("timecost")

	var err error

	calcCounter, err = meter.Int64Counter("timecost.calculations.total",
		metric.WithDescription("Calculations by outcome"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculation counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("timecost.calculation.duration",
		metric.WithDescription("Duration of calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("timecost.errors.total",
		metric.WithDescription("Requests rejected before a calculation could run"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	hoursGauge, err = meter.Float64Gauge("timecost.last_work_hours",
		metric.WithDescription("Work hours of the last successful calculation"),
		metric.WithUnit("h"),
	)
	if err != nil {
		return fmt.Errorf("creating hours gauge: %w", err)
	}

	return nil
}
