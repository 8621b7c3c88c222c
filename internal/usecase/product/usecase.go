package usecase

import (
	"context"
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
	productdto "github.com/flashmart/checkout-service/internal/usecase/dto/product"
)

type ProductUsecase interface {
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (int64, error)
}

type DefaultProductUsecase struct {
	ProductRepo domain.ProductRepository
	Cache       domain.ProductCache
	CacheTTL    time.Duration
}

func NewDefaultProductUsecase(
	productRepo domain.ProductRepository,
	cache domain.ProductCache,
	cacheTTL time.Duration,
) *DefaultProductUsecase {
	return &DefaultProductUsecase{
		ProductRepo: productRepo,
		Cache:       cache,
		CacheTTL:    cacheTTL,
	}
}
