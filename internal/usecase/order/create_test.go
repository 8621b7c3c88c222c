package usecase

import (
	"context"
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
	orderdto "github.com/flashmart/checkout-service/internal/usecase/dto/order"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testHoldTTL = 2 * time.Minute

var testStart = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type orderFixture struct {
	db        *gorm.DB
	uc        *DefaultOrderUsecase
	clock     *clock.Manual
	cache     *testutil.MemoryProductCache
	publisher *testutil.RecordingPublisher
	products  domain.ProductRepository
	holds     domain.HoldRepository
	orders    domain.OrderRepository
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := testutil.NewDB(t)
	clk := clock.NewManual(testStart)
	cache := testutil.NewMemoryProductCache()
	publisher := testutil.NewRecordingPublisher()
	productRepo := repository.NewDefaultProductRepository(db)
	holdRepo := repository.NewDefaultHoldRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)

	uc := NewDefaultOrderUsecase(
		orderRepo,
		holdRepo,
		productRepo,
		postgres.NewGormTxManager(db),
		cache,
		publisher,
		clk,
		metrics.NewCheckoutMetrics(prometheus.NewRegistry()),
	)
	return &orderFixture{
		db:        db,
		uc:        uc,
		clock:     clk,
		cache:     cache,
		publisher: publisher,
		products:  productRepo,
		holds:     holdRepo,
		orders:    orderRepo,
	}
}

// seedHeldProduct sets up the state right after a successful hold: stock
// already debited by quantity, hold active until testStart+TTL.
func (fx *orderFixture) seedHeldProduct(t *testing.T, stockLeft, quantity int) (productID, holdID int64) {
	t.Helper()
	ctx := context.Background()

	productID, err := fx.products.CreateProduct(ctx, &domain.Product{
		Name:  "Blast X900 Headphones",
		Price: decimal.RequireFromString("99.99"),
		Stock: stockLeft,
	})
	require.NoError(t, err)

	holdID, err = fx.holds.CreateHold(ctx, &domain.Hold{
		ProductID: productID,
		Quantity:  quantity,
		Status:    domain.HoldStatusActive,
		ExpiresAt: testStart.Add(testHoldTTL),
		CreatedAt: testStart,
	})
	require.NoError(t, err)
	return productID, holdID
}

func (fx *orderFixture) stock(t *testing.T, productID int64) int {
	t.Helper()
	product, err := fx.products.GetProductByID(context.Background(), productID)
	require.NoError(t, err)
	return product.Stock
}

func TestCreateOrderFromHold_ConvertsHold(t *testing.T) {
	fx := newOrderFixture(t)
	productID, holdID := fx.seedHeldProduct(t, 7, 3)

	output, err := fx.uc.CreateOrderFromHold(context.Background(), &orderdto.CreateOrderInput{HoldID: holdID})
	require.NoError(t, err)
	assert.Positive(t, output.OrderID)
	assert.Equal(t, productID, output.ProductID)
	assert.Equal(t, 3, output.Quantity)
	assert.Equal(t, "299.97", output.TotalPrice.StringFixed(2), "3 x 99.99, computed in decimals")
	assert.Equal(t, domain.OrderStatusPending, output.Status)
	assert.Nil(t, output.PaidAt)

	hold, err := fx.holds.GetHoldByID(context.Background(), holdID)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStatusUsed, hold.Status)

	assert.Equal(t, 7, fx.stock(t, productID), "conversion moves no stock")

	assert.Eventually(t, func() bool {
		events := fx.publisher.Events()
		return len(events) == 1 && events[0].EventType == domain.OrderEventCreated
	}, time.Second, 10*time.Millisecond)
}

func TestCreateOrderFromHold_HoldMissing(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.uc.CreateOrderFromHold(context.Background(), &orderdto.CreateOrderInput{HoldID: 4242})
	assert.ErrorIs(t, err, domain.ErrHoldNotFound)
}

func TestCreateOrderFromHold_UsedHoldRejected(t *testing.T) {
	fx := newOrderFixture(t)
	_, holdID := fx.seedHeldProduct(t, 7, 3)

	_, err := fx.uc.CreateOrderFromHold(context.Background(), &orderdto.CreateOrderInput{HoldID: holdID})
	require.NoError(t, err)

	_, err = fx.uc.CreateOrderFromHold(context.Background(), &orderdto.CreateOrderInput{HoldID: holdID})
	assert.ErrorIs(t, err, domain.ErrHoldAlreadyUsed)
	assert.Equal(t, "Hold has already been used for an order", err.Error())
}

func TestCreateOrderFromHold_SweptHoldRejected(t *testing.T) {
	fx := newOrderFixture(t)
	_, holdID := fx.seedHeldProduct(t, 7, 3)

	fx.clock.Advance(testHoldTTL + time.Second)
	ok, err := fx.holds.MarkHoldExpired(context.Background(), holdID, fx.clock.Now())
	require.NoError(t, err)
	require.True(t, ok)

	_, err = fx.uc.CreateOrderFromHold(context.Background(), &orderdto.CreateOrderInput{HoldID: holdID})
	var notActive *domain.HoldNotActiveError
	require.ErrorAs(t, err, &notActive)
	assert.Equal(t, domain.HoldStatusExpired, notActive.Status)
	assert.Equal(t, "Hold is expired and cannot be used", err.Error())
}

// A hold past its deadline that the sweeper has not flipped yet is just as
// unusable, but the refusal leaves it active: refunding stock is the
// sweeper's job, and doing it here too would double-count.
func TestCreateOrderFromHold_PastDeadlineBeforeSweep(t *testing.T) {
	fx := newOrderFixture(t)
	productID, holdID := fx.seedHeldProduct(t, 7, 3)

	fx.clock.Advance(testHoldTTL + time.Second)

	_, err := fx.uc.CreateOrderFromHold(context.Background(), &orderdto.CreateOrderInput{HoldID: holdID})
	assert.ErrorIs(t, err, domain.ErrHoldExpired)
	assert.Equal(t, "Hold has expired", err.Error())

	hold, err := fx.holds.GetHoldByID(context.Background(), holdID)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStatusActive, hold.Status)
	assert.Equal(t, 7, fx.stock(t, productID))
}

// The deadline itself is already too late.
func TestCreateOrderFromHold_DeadlineBoundary(t *testing.T) {
	fx := newOrderFixture(t)
	_, holdID := fx.seedHeldProduct(t, 7, 3)

	fx.clock.Advance(testHoldTTL)

	_, err := fx.uc.CreateOrderFromHold(context.Background(), &orderdto.CreateOrderInput{HoldID: holdID})
	assert.ErrorIs(t, err, domain.ErrHoldExpired)
}

// Eight clients race to convert one hold. Exactly one order may exist
// afterwards; everyone else is told the hold was already used.
func TestCreateOrderFromHold_ConcurrentSingleWinner(t *testing.T) {
	fx := newOrderFixture(t)
	_, holdID := fx.seedHeldProduct(t, 7, 3)

	var wg sync.WaitGroup
	var wins, rejections atomic.Int64
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.uc.CreateOrderFromHold(context.Background(), &orderdto.CreateOrderInput{HoldID: holdID})
			switch {
			case err == nil:
				wins.Add(1)
			default:
				assert.ErrorIs(t, err, domain.ErrHoldAlreadyUsed)
				rejections.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins.Load())
	assert.Equal(t, int64(7), rejections.Load())

	var count int64
	require.NoError(t, fx.db.Table("orders").Where("hold_id = ?", holdID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
