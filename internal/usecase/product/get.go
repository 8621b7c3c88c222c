package usecase

import (
	"context"

	"github.com/flashmart/checkout-service/internal/domain"
	"go.uber.org/zap"
)

// GetProductByID serves product reads through the cache. A stale stock
// figure here is fine: every stock mutation forgets the entry, and the
// authoritative check happens under the storage transaction anyway.
func (uc *DefaultProductUsecase) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	cached, err := uc.Cache.GetProduct(ctx, productID)
	if err != nil {
		zap.L().Warn("product cache read failed",
			zap.Int64("product_id", productID), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := uc.ProductRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := uc.Cache.SetProduct(ctx, product, uc.CacheTTL); err != nil {
		zap.L().Warn("product cache write failed",
			zap.Int64("product_id", productID), zap.Error(err))
	}
	return product, nil
}
