package models

import (
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`
	// The unique index on HoldID is load-bearing: it is what makes
	// "one order per hold" hold under any interleaving.
	HoldID     int64              `gorm:"not null;uniqueIndex"`
	Hold       HoldModel          `gorm:"foreignKey:HoldID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID  int64              `gorm:"not null;index"`
	Quantity   int                `gorm:"not null;check:quantity > 0"`
	TotalPrice decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Status     domain.OrderStatus `gorm:"type:varchar(16);not null;index"`
	PaidAt     *time.Time
	CreatedAt  time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
