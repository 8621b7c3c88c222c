package usecase

import (
	"context"

	"github.com/flashmart/checkout-service/internal/domain"
	"go.uber.org/zap"
)

// ReleaseExpiredHold returns an expired hold's units to stock. The status
// flip is guarded, so a hold converted to an order between the sweeper's
// scan and this transaction is left alone and false comes back. Releasing
// twice is equally harmless.
func (uc *DefaultHoldUsecase) ReleaseExpiredHold(ctx context.Context, holdID int64) (bool, error) {
	var (
		released  bool
		productID int64
		quantity  int
	)

	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		released = false

		hold, err := uc.HoldRepo.GetHoldByID(ctx, holdID)
		if err != nil {
			return err
		}

		ok, err := uc.HoldRepo.MarkHoldExpired(ctx, hold.ID, uc.Clock.Now())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := uc.ProductRepo.IncrementStock(ctx, hold.ProductID, hold.Quantity); err != nil {
			return err
		}

		released = true
		productID = hold.ProductID
		quantity = hold.Quantity
		return nil
	})
	if err != nil || !released {
		return false, err
	}

	if err := uc.Cache.ForgetProduct(ctx, productID); err != nil {
		zap.L().Warn("failed to invalidate product cache",
			zap.Int64("product_id", productID), zap.Error(err))
	}
	uc.Metrics.RecordHoldExpired(quantity)
	zap.L().Info("hold released",
		zap.Int64("hold_id", holdID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity))

	go func(event domain.OrderEvent) {
		if err := uc.Publisher.PublishOrderEvent(event); err != nil {
			zap.L().Error("failed to publish order event",
				zap.String("event_type", event.EventType), zap.Error(err))
		}
	}(domain.OrderEvent{
		EventType:  domain.HoldEventExpired,
		HoldID:     holdID,
		ProductID:  productID,
		Quantity:   quantity,
		Status:     string(domain.HoldStatusExpired),
		OccurredAt: uc.Clock.Now(),
	})

	return true, nil
}

// ReleaseExpiredHolds scans for active holds whose deadline passed and
// releases each in its own transaction. The scan takes no locks; a hold
// converted between scan and release is skipped by the guarded flip. One
// bad hold never aborts the batch.
func (uc *DefaultHoldUsecase) ReleaseExpiredHolds(ctx context.Context) (int, error) {
	holds, err := uc.HoldRepo.FindExpiredHolds(ctx, uc.Clock.Now())
	if err != nil {
		return 0, err
	}

	released := 0
	for _, hold := range holds {
		ok, err := uc.ReleaseExpiredHold(ctx, hold.ID)
		if err != nil {
			zap.L().Error("failed to release expired hold",
				zap.Int64("hold_id", hold.ID), zap.Error(err))
			continue
		}
		if ok {
			released++
		}
	}
	return released, nil
}
