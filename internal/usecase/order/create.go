package usecase

import (
	"context"

	"github.com/flashmart/checkout-service/internal/domain"
	orderdto "github.com/flashmart/checkout-service/internal/usecase/dto/order"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateOrderFromHold converts a still-active hold into a pending order and
// retires the hold. Stock does not move here: the units were debited at
// hold time and stay debited while the order is pending. Two defences close
// the convert race: the status flip only matches an active row, and the
// unique index on hold_id rejects a second insert outright.
func (uc *DefaultOrderUsecase) CreateOrderFromHold(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error) {
	var created *domain.Order

	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		hold, err := uc.HoldRepo.GetHoldByID(ctx, input.HoldID)
		if err != nil {
			return err
		}
		if hold.Status != domain.HoldStatusActive {
			if hold.Status == domain.HoldStatusUsed {
				return domain.ErrHoldAlreadyUsed
			}
			return &domain.HoldNotActiveError{Status: hold.Status}
		}
		// The deadline check stands on its own: a hold can be past its
		// deadline while the sweeper has not flipped it yet.
		if hold.ExpiredAt(uc.Clock.Now()) {
			return domain.ErrHoldExpired
		}

		product, err := uc.ProductRepo.GetProductByID(ctx, hold.ProductID)
		if err != nil {
			return err
		}

		ok, err := uc.HoldRepo.MarkHoldUsed(ctx, hold.ID)
		if err != nil {
			return err
		}
		if !ok {
			// Lost the flip to a concurrent convert or sweep; re-read for
			// the honest refusal.
			current, err := uc.HoldRepo.GetHoldByID(ctx, hold.ID)
			if err != nil {
				return err
			}
			if current.Status == domain.HoldStatusUsed {
				return domain.ErrHoldAlreadyUsed
			}
			return &domain.HoldNotActiveError{Status: current.Status}
		}

		order := &domain.Order{
			HoldID:     hold.ID,
			ProductID:  hold.ProductID,
			Quantity:   hold.Quantity,
			TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(hold.Quantity))),
			Status:     domain.OrderStatusPending,
			CreatedAt:  uc.Clock.Now(),
		}
		orderID, err := uc.OrderRepo.CreateOrder(ctx, order)
		if err != nil {
			return err
		}

		order.ID = orderID
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Metrics.RecordOrderCreated()
	zap.L().Info("order created",
		zap.Int64("order_id", created.ID),
		zap.Int64("hold_id", created.HoldID),
		zap.Int64("product_id", created.ProductID),
		zap.String("total_price", created.TotalPrice.StringFixed(2)))
	uc.publishEvent(domain.OrderEvent{
		EventType:  domain.OrderEventCreated,
		OrderID:    created.ID,
		HoldID:     created.HoldID,
		ProductID:  created.ProductID,
		Quantity:   created.Quantity,
		TotalPrice: created.TotalPrice.StringFixed(2),
		Status:     string(created.Status),
		OccurredAt: uc.Clock.Now(),
	})

	return &orderdto.OrderOutput{
		OrderID:    created.ID,
		ProductID:  created.ProductID,
		Quantity:   created.Quantity,
		TotalPrice: created.TotalPrice,
		Status:     created.Status,
		PaidAt:     created.PaidAt,
		CreatedAt:  created.CreatedAt,
	}, nil
}
