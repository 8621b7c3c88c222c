package orderdto

import (
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderOutput struct {
	OrderID    int64
	ProductID  int64
	Quantity   int
	TotalPrice decimal.Decimal
	Status     domain.OrderStatus
	PaidAt     *time.Time
	CreatedAt  time.Time
}
