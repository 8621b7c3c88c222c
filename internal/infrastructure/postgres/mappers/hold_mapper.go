package mappers

import (
	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/models"
)

func ToDomainHold(model *models.HoldModel) *domain.Hold {
	return &domain.Hold{
		ID:        model.ID,
		ProductID: model.ProductID,
		Quantity:  model.Quantity,
		Status:    model.Status,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMHold(hold *domain.Hold) *models.HoldModel {
	return &models.HoldModel{
		ID:        hold.ID,
		ProductID: hold.ProductID,
		Quantity:  hold.Quantity,
		Status:    hold.Status,
		ExpiresAt: hold.ExpiresAt,
		CreatedAt: hold.CreatedAt,
	}
}
