package mappers

import (
	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/models"
)

func ToDomainWebhookLog(model *models.WebhookLogModel) *domain.WebhookLog {
	return &domain.WebhookLog{
		ID:             model.ID,
		IdempotencyKey: model.IdempotencyKey,
		OrderID:        model.OrderID,
		Status:         model.Status,
		Payload:        model.Payload,
		ProcessedAt:    model.ProcessedAt,
	}
}

func ToGORMWebhookLog(log *domain.WebhookLog) *models.WebhookLogModel {
	return &models.WebhookLogModel{
		ID:             log.ID,
		IdempotencyKey: log.IdempotencyKey,
		OrderID:        log.OrderID,
		Status:         log.Status,
		Payload:        log.Payload,
		ProcessedAt:    log.ProcessedAt,
	}
}
