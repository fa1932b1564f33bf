package settings

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"timetobuy/internal/observability"
)

const defaultSaveTimeout = 5 * time.Second

// Saver persists settings in the background. Save never blocks on I/O and
// never reports failure to its caller; failures are logged.
//
// Saves are last-write-wins: once a save has been attempted, any save issued
// before it is dropped instead of overwriting newer values.
type Saver struct {
	store   Store
	timeout time.Duration

	wg conc.WaitGroup

	issued    atomic.Uint64
	mu        sync.Mutex
	attempted uint64
}

// NewSaver returns a Saver writing to store. Each save gets timeout; a
// non-positive timeout means 5s.
func NewSaver(store Store, timeout time.Duration) *Saver {
	if timeout <= 0 {
		timeout = defaultSaveTimeout
	}
	return &Saver{store: store, timeout: timeout}
}

// Save schedules s to be written and returns immediately.
func (s *Saver) Save(st Settings) {
	gen := s.issued.Add(1)

	s.wg.Go(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if gen < s.attempted {
			asyncSaves.WithLabelValues("superseded").Inc()
			return
		}
		s.attempted = gen

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.store.Save(ctx, st); err != nil {
			asyncSaves.WithLabelValues("failed").Inc()
			observability.Logger.Warn("settings save failed",
				zap.Uint64("generation", gen),
				zap.Error(err),
			)
			return
		}

		asyncSaves.WithLabelValues("saved").Inc()
		observability.Logger.Debug("settings saved", zap.Uint64("generation", gen))
	})
}

// Wait blocks until every scheduled save has finished. Call it at shutdown,
// after the last Save.
func (s *Saver) Wait() {
	s.wg.Wait()
}
