package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (fx *orderFixture) seedPendingOrder(t *testing.T, productID, holdID int64, quantity int) *domain.Order {
	t.Helper()
	order := &domain.Order{
		HoldID:     holdID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: decimal.RequireFromString("99.99").Mul(decimal.NewFromInt(int64(quantity))),
		Status:     domain.OrderStatusPending,
		CreatedAt:  testStart,
	}
	id, err := fx.orders.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	order.ID = id
	return order
}

func TestCancelOrder_RefundsStock(t *testing.T) {
	fx := newOrderFixture(t)
	productID, holdID := fx.seedHeldProduct(t, 7, 3)
	require.True(t, mustMarkUsed(t, fx, holdID))
	order := fx.seedPendingOrder(t, productID, holdID, 3)

	cancelled, err := fx.uc.CancelOrder(context.Background(), order)
	require.NoError(t, err)
	assert.True(t, cancelled)

	assert.Equal(t, 10, fx.stock(t, productID), "cancellation returns the order's units")

	stored, err := fx.orders.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, stored.Status)

	hold, err := fx.holds.GetHoldByID(context.Background(), holdID)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStatusUsed, hold.Status, "cancellation never revives the hold")

	assert.Contains(t, fx.cache.ForgottenIDs(), productID)
	assert.Eventually(t, func() bool {
		events := fx.publisher.Events()
		return len(events) == 1 && events[0].EventType == domain.OrderEventCancelled
	}, time.Second, 10*time.Millisecond)
}

func TestCancelOrder_PaidOrderRefused(t *testing.T) {
	fx := newOrderFixture(t)
	productID, holdID := fx.seedHeldProduct(t, 7, 3)
	require.True(t, mustMarkUsed(t, fx, holdID))
	order := fx.seedPendingOrder(t, productID, holdID, 3)

	ok, err := fx.orders.MarkOrderPaid(context.Background(), order.ID, testStart.Add(time.Minute))
	require.NoError(t, err)
	require.True(t, ok)

	cancelled, err := fx.uc.CancelOrder(context.Background(), order)
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, 7, fx.stock(t, productID), "paid units are sold, not refundable")
}

func TestCancelOrder_SecondCancelNoOp(t *testing.T) {
	fx := newOrderFixture(t)
	productID, holdID := fx.seedHeldProduct(t, 7, 3)
	require.True(t, mustMarkUsed(t, fx, holdID))
	order := fx.seedPendingOrder(t, productID, holdID, 3)

	cancelled, err := fx.uc.CancelOrder(context.Background(), order)
	require.NoError(t, err)
	require.True(t, cancelled)

	cancelled, err = fx.uc.CancelOrder(context.Background(), order)
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, 10, fx.stock(t, productID), "refund happens exactly once")
}

func mustMarkUsed(t *testing.T, fx *orderFixture, holdID int64) bool {
	t.Helper()
	ok, err := fx.holds.MarkHoldUsed(context.Background(), holdID)
	require.NoError(t, err)
	return ok
}
