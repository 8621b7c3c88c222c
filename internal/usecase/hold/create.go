package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/flashmart/checkout-service/internal/domain"
	holddto "github.com/flashmart/checkout-service/internal/usecase/dto/hold"
	"go.uber.org/zap"
)

// CreateHold debits product stock and opens a time-bounded reservation in
// one transaction. The conditional decrement is the only stock gate:
// whichever request debits the row first wins, and a loser changes nothing.
func (uc *DefaultHoldUsecase) CreateHold(ctx context.Context, input *holddto.CreateHoldInput) (*holddto.HoldOutput, error) {
	var output *holddto.HoldOutput

	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		ok, err := uc.ProductRepo.DecrementStock(ctx, input.ProductID, input.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			// Either the product is gone or the stock ran out; re-read to
			// tell the two apart and report the remaining units.
			product, err := uc.ProductRepo.GetProductByID(ctx, input.ProductID)
			if err != nil {
				return err
			}
			return &domain.InsufficientStockError{Available: product.Stock}
		}

		now := uc.Clock.Now()
		hold := &domain.Hold{
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Status:    domain.HoldStatusActive,
			ExpiresAt: now.Add(uc.HoldTTL),
			CreatedAt: now,
		}
		holdID, err := uc.HoldRepo.CreateHold(ctx, hold)
		if err != nil {
			return err
		}

		output = &holddto.HoldOutput{HoldID: holdID, ExpiresAt: hold.ExpiresAt}
		return nil
	})
	if err != nil {
		uc.Metrics.RecordHoldRejected(holdRejectReason(err))
		return nil, err
	}

	if err := uc.Cache.ForgetProduct(ctx, input.ProductID); err != nil {
		zap.L().Warn("failed to invalidate product cache",
			zap.Int64("product_id", input.ProductID), zap.Error(err))
	}
	uc.Metrics.RecordHoldCreated(strconv.FormatInt(input.ProductID, 10))
	zap.L().Info("hold created",
		zap.Int64("hold_id", output.HoldID),
		zap.Int64("product_id", input.ProductID),
		zap.Int("quantity", input.Quantity),
		zap.Time("expires_at", output.ExpiresAt))

	return output, nil
}

func holdRejectReason(err error) string {
	var insufficientStock *domain.InsufficientStockError
	switch {
	case errors.As(err, &insufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	default:
		return "internal"
	}
}
