package models

import (
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
)

type HoldModel struct {
	ID        int64             `gorm:"primaryKey;autoIncrement"`
	ProductID int64             `gorm:"not null;index"`
	Product   ProductModel      `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity  int               `gorm:"not null;check:quantity > 0"`
	Status    domain.HoldStatus `gorm:"type:varchar(16);not null;index:idx_holds_status_expires"`
	ExpiresAt time.Time         `gorm:"not null;index:idx_holds_status_expires"`
	CreatedAt time.Time
}

func (HoldModel) TableName() string {
	return "holds"
}
