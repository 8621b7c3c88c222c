package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/mappers"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWebhookLogRepository struct {
	DB *gorm.DB
}

func NewDefaultWebhookLogRepository(db *gorm.DB) *DefaultWebhookLogRepository {
	return &DefaultWebhookLogRepository{DB: db}
}

func (r *DefaultWebhookLogRepository) CreateWebhookLog(ctx context.Context, log *domain.WebhookLog) error {
	logModel := mappers.ToGORMWebhookLog(log)
	if err := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).Create(logModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateWebhook
		}
		return err
	}
	return nil
}

func (r *DefaultWebhookLogRepository) SetWebhookLogOrder(ctx context.Context, logID string, orderID int64) error {
	result := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).
		Model(&models.WebhookLogModel{}).
		Where("id = ?", logID).
		Update("order_id", orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("webhook log %s not found", logID)
	}
	return nil
}

func (r *DefaultWebhookLogRepository) GetWebhookLogByKey(ctx context.Context, idempotencyKey string) (*domain.WebhookLog, error) {
	var logModel models.WebhookLogModel
	err := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).First(&logModel, "idempotency_key = ?", idempotencyKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainWebhookLog(&logModel), nil
}
