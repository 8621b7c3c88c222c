package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is the durable result of converting a hold before it expired.
// At most one order ever exists per hold; paid and cancelled are terminal.
type Order struct {
	ID         int64
	HoldID     int64
	ProductID  int64
	Quantity   int
	TotalPrice decimal.Decimal
	Status     OrderStatus
	PaidAt     *time.Time
	CreatedAt  time.Time
}

// Terminal reports whether the order can no longer change state.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusCancelled
}
