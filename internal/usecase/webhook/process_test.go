package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flashmart/checkout-service/internal/clock"
	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/metrics"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/repository"
	"github.com/flashmart/checkout-service/internal/testutil"
	webhookdto "github.com/flashmart/checkout-service/internal/usecase/dto/webhook"
	orderuc "github.com/flashmart/checkout-service/internal/usecase/order"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testStart = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type webhookFixture struct {
	db        *gorm.DB
	uc        *DefaultWebhookUsecase
	clock     *clock.Manual
	cache     *testutil.MemoryProductCache
	publisher *testutil.RecordingPublisher
	products  domain.ProductRepository
	holds     domain.HoldRepository
	orders    domain.OrderRepository
	logs      domain.WebhookLogRepository
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()
	db := testutil.NewDB(t)
	clk := clock.NewManual(testStart)
	cache := testutil.NewMemoryProductCache()
	publisher := testutil.NewRecordingPublisher()
	productRepo := repository.NewDefaultProductRepository(db)
	holdRepo := repository.NewDefaultHoldRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	webhookRepo := repository.NewDefaultWebhookLogRepository(db)
	txManager := postgres.NewGormTxManager(db)
	checkoutMetrics := metrics.NewCheckoutMetrics(prometheus.NewRegistry())

	orders := orderuc.NewDefaultOrderUsecase(
		orderRepo, holdRepo, productRepo, txManager, cache, publisher, clk, checkoutMetrics)
	uc := NewDefaultWebhookUsecase(
		webhookRepo, orderRepo, orders, txManager, publisher, clk, checkoutMetrics)

	return &webhookFixture{
		db:        db,
		uc:        uc,
		clock:     clk,
		cache:     cache,
		publisher: publisher,
		products:  productRepo,
		holds:     holdRepo,
		orders:    orderRepo,
		logs:      webhookRepo,
	}
}

// seedPendingOrder sets up the state after a converted hold: stock debited,
// hold used, order pending payment.
func (fx *webhookFixture) seedPendingOrder(t *testing.T) (productID, orderID int64) {
	t.Helper()
	ctx := context.Background()

	productID, err := fx.products.CreateProduct(ctx, &domain.Product{
		Name:  "Blast X900 Headphones",
		Price: decimal.RequireFromString("99.99"),
		Stock: 7,
	})
	require.NoError(t, err)

	holdID, err := fx.holds.CreateHold(ctx, &domain.Hold{
		ProductID: productID,
		Quantity:  3,
		Status:    domain.HoldStatusUsed,
		ExpiresAt: testStart.Add(2 * time.Minute),
		CreatedAt: testStart,
	})
	require.NoError(t, err)

	orderID, err = fx.orders.CreateOrder(ctx, &domain.Order{
		HoldID:     holdID,
		ProductID:  productID,
		Quantity:   3,
		TotalPrice: decimal.RequireFromString("299.97"),
		Status:     domain.OrderStatusPending,
		CreatedAt:  testStart,
	})
	require.NoError(t, err)
	return productID, orderID
}

func (fx *webhookFixture) stock(t *testing.T, productID int64) int {
	t.Helper()
	product, err := fx.products.GetProductByID(context.Background(), productID)
	require.NoError(t, err)
	return product.Stock
}

func webhookInput(key string, orderID int64, status string) *webhookdto.ProcessWebhookInput {
	payload := fmt.Sprintf(`{"order_id":%d,"payment_status":%q,"idempotency_key":%q}`, orderID, status, key)
	return &webhookdto.ProcessWebhookInput{
		IdempotencyKey: key,
		OrderID:        orderID,
		PaymentStatus:  status,
		RawPayload:     []byte(payload),
	}
}

func TestProcessWebhook_SuccessSettlesOrder(t *testing.T) {
	fx := newWebhookFixture(t)
	productID, orderID := fx.seedPendingOrder(t)
	input := webhookInput("pay_abc123", orderID, "success")

	output, err := fx.uc.ProcessWebhook(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Payment successful, order marked as paid", output.Message)
	assert.False(t, output.AlreadyProcessed)

	order, err := fx.orders.GetOrderByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	require.NotNil(t, order.PaidAt)
	assert.True(t, order.PaidAt.Equal(testStart))

	assert.Equal(t, 7, fx.stock(t, productID), "payment moves no stock")

	log, err := fx.logs.GetWebhookLogByKey(context.Background(), "pay_abc123")
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, domain.PaymentStatusSuccess, log.Status)
	assert.Equal(t, string(input.RawPayload), log.Payload, "raw body stored verbatim")
	require.NotNil(t, log.OrderID)
	assert.Equal(t, orderID, *log.OrderID)
}

func TestProcessWebhook_RetryReplaysWithoutResettling(t *testing.T) {
	fx := newWebhookFixture(t)
	_, orderID := fx.seedPendingOrder(t)

	_, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_abc123", orderID, "success"))
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return len(fx.publisher.Events()) == 1
	}, time.Second, 10*time.Millisecond)

	fx.clock.Advance(time.Minute)

	output, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_abc123", orderID, "success"))
	require.NoError(t, err)
	assert.Equal(t, "Webhook already processed", output.Message)
	assert.True(t, output.AlreadyProcessed)

	order, err := fx.orders.GetOrderByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.True(t, order.PaidAt.Equal(testStart), "replay must not touch the settlement time")

	assert.Never(t, func() bool {
		return len(fx.publisher.Events()) > 1
	}, 200*time.Millisecond, 20*time.Millisecond, "replay publishes nothing")
}

func TestProcessWebhook_FailureCancelsAndRefunds(t *testing.T) {
	fx := newWebhookFixture(t)
	productID, orderID := fx.seedPendingOrder(t)

	output, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_fail1", orderID, "failure"))
	require.NoError(t, err)
	assert.Equal(t, "Payment failed, order cancelled and stock returned", output.Message)
	assert.False(t, output.AlreadyProcessed)

	order, err := fx.orders.GetOrderByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, order.Status)
	assert.Equal(t, 10, fx.stock(t, productID), "failed payment returns the units")
	assert.Contains(t, fx.cache.ForgottenIDs(), productID)
}

func TestProcessWebhook_RetriedFailureRefundsOnce(t *testing.T) {
	fx := newWebhookFixture(t)
	productID, orderID := fx.seedPendingOrder(t)

	_, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_fail1", orderID, "failure"))
	require.NoError(t, err)

	output, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_fail1", orderID, "failure"))
	require.NoError(t, err)
	assert.True(t, output.AlreadyProcessed)
	assert.Equal(t, 10, fx.stock(t, productID), "one refund, however many retries")
}

// A fresh key against an already-settled order records the delivery and
// changes nothing: terminal states are terminal.
func TestProcessWebhook_NewKeyOnSettledOrder(t *testing.T) {
	fx := newWebhookFixture(t)
	productID, orderID := fx.seedPendingOrder(t)

	_, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_first", orderID, "success"))
	require.NoError(t, err)

	output, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_second", orderID, "failure"))
	require.NoError(t, err)
	assert.Equal(t, "Payment failed, order cancelled and stock returned", output.Message)
	assert.False(t, output.AlreadyProcessed)

	order, err := fx.orders.GetOrderByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status, "paid order stays paid")
	assert.Equal(t, 7, fx.stock(t, productID), "no refund for a paid order")

	log, err := fx.logs.GetWebhookLogByKey(context.Background(), "pay_second")
	require.NoError(t, err)
	require.NotNil(t, log, "the delivery is still recorded")
}

func TestProcessWebhook_EarlyArrival(t *testing.T) {
	fx := newWebhookFixture(t)

	_, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_early", 999, "success"))
	require.ErrorIs(t, err, domain.ErrOrderNotFoundForWebhook)
	assert.Equal(t, "Order not found - webhook may have arrived early", err.Error())

	// The miss commits: the key is burned and retries are suppressed.
	log, lookupErr := fx.logs.GetWebhookLogByKey(context.Background(), "pay_early")
	require.NoError(t, lookupErr)
	require.NotNil(t, log)
	assert.Nil(t, log.OrderID)

	output, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_early", 999, "success"))
	require.NoError(t, err)
	assert.True(t, output.AlreadyProcessed)
}

func TestProcessWebhook_UnknownStatusRefused(t *testing.T) {
	fx := newWebhookFixture(t)
	_, orderID := fx.seedPendingOrder(t)

	_, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_bad", orderID, "refunded"))
	require.Error(t, err)

	log, lookupErr := fx.logs.GetWebhookLogByKey(context.Background(), "pay_bad")
	require.NoError(t, lookupErr)
	assert.Nil(t, log, "refused deliveries burn nothing")
}

// Six deliveries of one key race. Exactly one may settle the order; the
// rest must fold into the already-processed answer, whether they lost at
// the fast path or on the unique key.
func TestProcessWebhook_ConcurrentSameKey(t *testing.T) {
	fx := newWebhookFixture(t)
	productID, orderID := fx.seedPendingOrder(t)

	var wg sync.WaitGroup
	var settled, replayed atomic.Int64
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			output, err := fx.uc.ProcessWebhook(context.Background(), webhookInput("pay_race", orderID, "success"))
			if !assert.NoError(t, err) {
				return
			}
			if output.AlreadyProcessed {
				replayed.Add(1)
			} else {
				settled.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), settled.Load(), "exactly one delivery wins")
	assert.Equal(t, int64(5), replayed.Load())

	order, err := fx.orders.GetOrderByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.Equal(t, 7, fx.stock(t, productID))

	var count int64
	require.NoError(t, fx.db.Table("webhook_logs").Where("idempotency_key = ?", "pay_race").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
