package usecase

import (
	"context"

	"github.com/flashmart/checkout-service/internal/domain"
	productdto "github.com/flashmart/checkout-service/internal/usecase/dto/product"
)

// CreateProduct inserts catalogue inventory. Only seeding and admin tooling
// call this; the checkout paths never create or destroy products.
func (uc *DefaultProductUsecase) CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (int64, error) {
	return uc.ProductRepo.CreateProduct(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
	})
}
