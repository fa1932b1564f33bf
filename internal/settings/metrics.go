package settings

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// storeOperations counts Load/Save calls by outcome (ok, error, rejected)
	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timetobuy_settings_operations_total",
			Help: "Settings store operations by backend, operation and outcome",
		},
		[]string{"backend", "operation", "outcome"},
	)

	// breakerState tracks the guard's circuit breaker (1=closed, 2=half-open, 3=open)
	breakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "timetobuy_settings_breaker_state",
			Help: "Settings store circuit breaker state: 1=closed, 2=half-open, 3=open",
		},
		[]string{"backend"},
	)

	// asyncSaves counts fire-and-forget saves by result (saved, failed, superseded)
	asyncSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timetobuy_settings_async_saves_total",
			Help: "Background settings saves by result",
		},
		[]string{"result"},
	)
)
