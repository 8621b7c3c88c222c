package domain

import (
	"context"
	"time"
)

type OrderRepository interface {
	// CreateOrder inserts a pending order. A second order for the same hold
	// fails with ErrHoldAlreadyUsed regardless of interleaving.
	CreateOrder(ctx context.Context, order *Order) (int64, error)
	GetOrderByID(ctx context.Context, orderID int64) (*Order, error)

	// MarkOrderPaid flips a pending order to paid and reports false when the
	// order was already terminal.
	MarkOrderPaid(ctx context.Context, orderID int64, paidAt time.Time) (bool, error)

	// MarkOrderCancelled flips a pending order to cancelled and reports false
	// when the order was already terminal.
	MarkOrderCancelled(ctx context.Context, orderID int64) (bool, error)
}
