package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"timetobuy/internal/config"
	"timetobuy/internal/observability"
	"timetobuy/internal/server"
	"timetobuy/internal/settings"
	"timetobuy/internal/timecost"
)

func main() {

	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := initTelemetry(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.MetricInterval)
		if err != nil {
			panic(err)
		}
		defer shutdown(ctx)
	} else if err := timecost.InitMetrics(); err != nil {
		panic(err)
	}

	// Settings
	backend, err := settings.Open(cfg.Settings.Backend, cfg.Settings.Path)
	if err != nil {
		observability.Logger.Fatal("failed to open settings store",
			zap.String("backend", cfg.Settings.Backend),
			zap.String("path", cfg.Settings.Path),
			zap.Error(err),
		)
	}
	store := settings.NewGuarded(backend, cfg.Settings.Backend, cfg.Settings.Breaker.Options())
	saver := settings.NewSaver(store, cfg.Settings.SaveTimeout)

	// Router
	router := server.NewRouter(server.Deps{Settings: store, Saver: saver})

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("address", cfg.Server.Address),
			zap.String("settings_backend", cfg.Settings.Backend),
			zap.Bool("telemetry", cfg.Telemetry.Enabled),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, cfg.Server.ShutdownTimeout)

	// Let pending settings writes land before the store goes away.
	saver.Wait()
	if err := store.Close(); err != nil {
		observability.Logger.Warn("closing settings store", zap.Error(err))
	}
}

func waitForShutdown(srv *http.Server, timeout time.Duration) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}
