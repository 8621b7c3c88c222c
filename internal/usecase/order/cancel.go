package usecase

import (
	"context"

	"github.com/flashmart/checkout-service/internal/domain"
	"go.uber.org/zap"
)

// CancelOrder returns a pending order's units to stock and marks it
// cancelled. Any other status reports false with no effect, so cancelling
// twice is safe. The linked hold stays used: cancellation never resurrects
// a reservation.
func (uc *DefaultOrderUsecase) CancelOrder(ctx context.Context, order *domain.Order) (bool, error) {
	var cancelled bool

	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		cancelled = false

		ok, err := uc.OrderRepo.MarkOrderCancelled(ctx, order.ID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := uc.ProductRepo.IncrementStock(ctx, order.ProductID, order.Quantity); err != nil {
			return err
		}

		cancelled = true
		return nil
	})
	if err != nil || !cancelled {
		return false, err
	}

	if err := uc.Cache.ForgetProduct(ctx, order.ProductID); err != nil {
		zap.L().Warn("failed to invalidate product cache",
			zap.Int64("product_id", order.ProductID), zap.Error(err))
	}
	uc.Metrics.RecordOrderCancelled(order.Quantity)
	zap.L().Info("order cancelled",
		zap.Int64("order_id", order.ID),
		zap.Int64("product_id", order.ProductID),
		zap.Int("quantity", order.Quantity))
	uc.publishEvent(domain.OrderEvent{
		EventType:  domain.OrderEventCancelled,
		OrderID:    order.ID,
		HoldID:     order.HoldID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice.StringFixed(2),
		Status:     string(domain.OrderStatusCancelled),
		OccurredAt: uc.Clock.Now(),
	})

	return true, nil
}
