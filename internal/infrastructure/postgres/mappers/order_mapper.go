package mappers

import (
	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:         model.ID,
		HoldID:     model.HoldID,
		ProductID:  model.ProductID,
		Quantity:   model.Quantity,
		TotalPrice: model.TotalPrice,
		Status:     model.Status,
		PaidAt:     model.PaidAt,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:         order.ID,
		HoldID:     order.HoldID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
		PaidAt:     order.PaidAt,
		CreatedAt:  order.CreatedAt,
	}
}
