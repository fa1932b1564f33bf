package main

import (
	"context"
	"time"

	"timetobuy/internal/observability"
	"timetobuy/internal/timecost"
)

// initMetrics installs the OTLP meter provider and then creates the domain
// instruments against it.
func initMetrics(ctx context.Context, serviceName string, interval time.Duration) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx, serviceName, interval)
	if err != nil {
		return nil, err
	}

	if err := timecost.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}

// initTelemetry wires traces, metrics and log export. The returned shutdown
// flushes all three in reverse order.
func initTelemetry(ctx context.Context, serviceName string, metricInterval time.Duration) (func(context.Context), error) {
	var shutdowns []func(context.Context) error

	shutdown := func(ctx context.Context) {
		for i := len(shutdowns) - 1; i >= 0; i-- {
			_ = shutdowns[i](ctx)
		}
	}

	traceShutdown, err := observability.InitTracing(ctx, serviceName)
	if err != nil {
		return nil, err
	}
	shutdowns = append(shutdowns, traceShutdown)

	metricShutdown, err := initMetrics(ctx, serviceName, metricInterval)
	if err != nil {
		shutdown(ctx)
		return nil, err
	}
	shutdowns = append(shutdowns, metricShutdown)

	logShutdown, err := observability.InitLogging(ctx, serviceName)
	if err != nil {
		shutdown(ctx)
		return nil, err
	}
	shutdowns = append(shutdowns, logShutdown)

	return shutdown, nil
}
