package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"timetobuy/internal/observability"
)

// ErrUnavailable is returned while the breaker is rejecting calls.
var ErrUnavailable = errors.New("settings store unavailable")

// BreakerOptions tune the circuit breaker in front of a Store.
type BreakerOptions struct {
	RequestThreshold int           // minimum requests before the breaker can trip
	FailureRatio     float64       // failures/requests (0.0-1.0) needed to trip
	Timeout          time.Duration // open period before a half-open probe
	MaxHalfOpenReqs  int           // requests allowed through while half-open
}

// DefaultBreakerOptions mirrors the values used when nothing is configured.
func DefaultBreakerOptions() BreakerOptions {
	return BreakerOptions{
		RequestThreshold: 5,
		FailureRatio:     0.5,
		Timeout:          30 * time.Second,
		MaxHalfOpenReqs:  1,
	}
}

// Guarded wraps a Store in a circuit breaker so a failing disk is not retried
// on every request.
type Guarded struct {
	next    Store
	backend string
	cb      *gobreaker.CircuitBreaker
}

// NewGuarded wraps next in a circuit breaker named after backend. The
// breaker state is exported as timetobuy_settings_breaker_state.
func NewGuarded(next Store, backend string, opts BreakerOptions) *Guarded {
	settings := gobreaker.Settings{
		Name:        "settings-" + backend,
		MaxRequests: uint32(opts.MaxHalfOpenReqs),
		Interval:    0,
		Timeout:     opts.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests == 0 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(opts.RequestThreshold) && ratio >= opts.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			observability.Logger.Warn("settings breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			breakerState.WithLabelValues(backend).Set(stateValue(to))
		},
	}

	breakerState.WithLabelValues(backend).Set(stateValue(gobreaker.StateClosed))

	return &Guarded{
		next:    next,
		backend: backend,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

// Load reads through the breaker. While it is open the call fails fast with
// ErrUnavailable.
func (g *Guarded) Load(ctx context.Context) (Settings, error) {
	v, err := g.cb.Execute(func() (interface{}, error) {
		return g.next.Load(ctx)
	})
	if err != nil {
		return Settings{}, g.fail("load", err)
	}
	storeOperations.WithLabelValues(g.backend, "load", "ok").Inc()
	return v.(Settings), nil
}

// Save writes through the breaker.
func (g *Guarded) Save(ctx context.Context, s Settings) error {
	_, err := g.cb.Execute(func() (interface{}, error) {
		return nil, g.next.Save(ctx, s)
	})
	if err != nil {
		return g.fail("save", err)
	}
	storeOperations.WithLabelValues(g.backend, "save", "ok").Inc()
	return nil
}

// Close closes the wrapped store.
func (g *Guarded) Close() error {
	return g.next.Close()
}

// State reports the breaker state, mainly for tests and diagnostics.
func (g *Guarded) State() gobreaker.State {
	return g.cb.State()
}

func (g *Guarded) fail(op string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		storeOperations.WithLabelValues(g.backend, op, "rejected").Inc()
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, g.backend, op, err)
	}
	storeOperations.WithLabelValues(g.backend, op, "error").Inc()
	return fmt.Errorf("settings %s: %w", op, err)
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 2
	case gobreaker.StateOpen:
		return 3
	default:
		return 1
	}
}
