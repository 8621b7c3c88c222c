package repository

import (
	"context"
	"errors"
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/mappers"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// CreateOrder relies on the unique index over hold_id: when two converts of
// the same hold race past every pre-check, one insert commits and the other
// comes back as ErrHoldAlreadyUsed.
func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (int64, error) {
	orderModel := mappers.ToGORMOrder(order)
	if err := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).Create(orderModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, domain.ErrHoldAlreadyUsed
		}
		return 0, err
	}
	return orderModel.ID, nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) MarkOrderPaid(ctx context.Context, orderID int64, paidAt time.Time) (bool, error) {
	result := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, domain.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":  domain.OrderStatusPaid,
			"paid_at": paidAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *DefaultOrderRepository) MarkOrderCancelled(ctx context.Context, orderID int64) (bool, error) {
	result := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, domain.OrderStatusPending).
		Update("status", domain.OrderStatusCancelled)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
