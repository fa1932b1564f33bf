package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogging tees Logger into an OTLP log exporter. Call it after
// InitLogger; stdout output is kept and the exporter sees the same level.
func InitLogging(ctx context.Context, serviceName string) (func(context.Context) error, error) {

	exporter, err := otlploghttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(
			sdklog.NewBatchProcessor(exporter),
		),
	)

	otelCore := otelzap.NewCore(ServiceName(serviceName), otelzap.WithLoggerProvider(provider))
	if err := teeLogger(otelCore); err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}

	return provider.Shutdown, nil
}

// teeLogger adds extra to Logger, filtered to Logger's current level.
func teeLogger(extra zapcore.Core) error {
	filtered, err := zapcore.NewIncreaseLevelCore(extra, Logger.Level())
	if err != nil {
		return fmt.Errorf("tee logger: %w", err)
	}

	Logger = zap.New(zapcore.NewTee(Logger.Core(), filtered))
	return nil
}
