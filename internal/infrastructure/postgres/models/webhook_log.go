package models

import (
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
)

type WebhookLogModel struct {
	ID string `gorm:"primaryKey;type:uuid"`
	// The unique index on IdempotencyKey is the idempotency primitive:
	// at most one delivery of a key ever commits a row.
	IdempotencyKey string               `gorm:"size:255;not null;uniqueIndex"`
	OrderID        *int64               `gorm:"index"`
	Status         domain.PaymentStatus `gorm:"type:varchar(16);not null"`
	Payload        string               `gorm:"type:jsonb"`
	ProcessedAt    time.Time            `gorm:"not null"`
}

func (WebhookLogModel) TableName() string {
	return "webhook_logs"
}
