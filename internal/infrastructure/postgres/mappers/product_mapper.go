package mappers

import (
	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Stock:       model.Stock,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
