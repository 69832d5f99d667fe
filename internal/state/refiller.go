package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickwarner/northpole/internal/observability"
	"go.uber.org/zap"
)

// Refiller adds one unit of milk to the shared bucket on every tick.
type Refiller struct {
	app      *App
	interval time.Duration
	logger   *zap.Logger
	metrics  observability.MetricsRegistry
}

// ErrInvalidInterval is returned for a refill interval that is not positive.
var ErrInvalidInterval = errors.New("refill interval must be positive")

// NewRefiller creates a Refiller for app ticking every interval.
func NewRefiller(app *App, interval time.Duration, logger *zap.Logger, metrics observability.MetricsRegistry) (*Refiller, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewNoOpRegistry()
	}
	return &Refiller{app: app, interval: interval, logger: logger, metrics: metrics}, nil
}

// Run blocks, refilling the bucket once per interval until ctx is done.
// Only the bucket lock is ever taken.
func (r *Refiller) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("milk refiller started", zap.Duration("interval", r.interval))
	for {
		select {
		case <-ticker.C:
			r.tick()
		case <-ctx.Done():
			r.logger.Info("milk refiller stopped")
			return
		}
	}
}

func (r *Refiller) tick() {
	changed, level := r.app.RefillMilk()
	if !changed {
		return
	}
	r.metrics.IncrementMilkRefills("ticker")
	r.logger.Debug("milk refilled", zap.Int("level", level))
}
