package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;check:stock >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
