package background

import (
	"context"
	"time"

	"github.com/flashmart/checkout-service/internal/infrastructure/metrics"
	usecase "github.com/flashmart/checkout-service/internal/usecase/hold"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

// SweeperTask periodically returns stock from holds whose TTL elapsed
// before they became orders. It is the only writer that moves a hold to
// expired; the release path re-checks status under the transaction, so a
// tick racing the order path is harmless.
type SweeperTask struct {
	Holds    usecase.HoldUsecase
	Metrics  *metrics.CheckoutMetrics
	Interval time.Duration
}

func NewSweeperTask(holds usecase.HoldUsecase, checkoutMetrics *metrics.CheckoutMetrics, interval time.Duration) *SweeperTask {
	return &SweeperTask{
		Holds:    holds,
		Metrics:  checkoutMetrics,
		Interval: interval,
	}
}

// Start runs sweeps until ctx is cancelled. A failed sweep is logged and the
// ticker keeps going.
func (t *SweeperTask) Start(ctx context.Context) {
	zap.L().Info("expiry sweeper started", zap.Duration("interval", t.Interval))

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			if _, err := t.RunOnce(ctx); err != nil {
				zap.L().Error("sweep failed", zap.Error(err))
			}
		}
	}
}

// RunOnce performs a single sweep and reports how many holds it released.
func (t *SweeperTask) RunOnce(ctx context.Context) (int, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return 0, err
	}
	sweepID := idGenerator()

	start := time.Now()
	released, err := t.Holds.ReleaseExpiredHolds(ctx)
	t.Metrics.RecordSweepDuration(time.Since(start).Seconds())
	if err != nil {
		return 0, err
	}

	if released > 0 {
		zap.L().Info("sweep released expired holds",
			zap.String("sweep_id", sweepID),
			zap.Int("released", released),
			zap.Duration("took", time.Since(start)))
	}
	return released, nil
}
