package usecase

import (
	"context"

	"github.com/flashmart/checkout-service/internal/clock"
	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/metrics"
	orderdto "github.com/flashmart/checkout-service/internal/usecase/dto/order"
	"go.uber.org/zap"
)

type OrderUsecase interface {
	CreateOrderFromHold(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)
	CancelOrder(ctx context.Context, order *domain.Order) (bool, error)
	GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	HoldRepo    domain.HoldRepository
	ProductRepo domain.ProductRepository
	TxManager   domain.TxManager
	Cache       domain.ProductCache
	Publisher   domain.OrderEventPublisher
	Clock       clock.Clock
	Metrics     *metrics.CheckoutMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	holdRepo domain.HoldRepository,
	productRepo domain.ProductRepository,
	txManager domain.TxManager,
	cache domain.ProductCache,
	eventPublisher domain.OrderEventPublisher,
	clk clock.Clock,
	checkoutMetrics *metrics.CheckoutMetrics,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		HoldRepo:    holdRepo,
		ProductRepo: productRepo,
		TxManager:   txManager,
		Cache:       cache,
		Publisher:   eventPublisher,
		Clock:       clk,
		Metrics:     checkoutMetrics,
	}
}

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(ctx, orderID)
}

// publishEvent is fire-and-forget: a dead broker must not fail checkout.
func (uc *DefaultOrderUsecase) publishEvent(event domain.OrderEvent) {
	go func(event domain.OrderEvent) {
		if err := uc.Publisher.PublishOrderEvent(event); err != nil {
			zap.L().Error("failed to publish order event",
				zap.String("event_type", event.EventType), zap.Error(err))
		}
	}(event)
}
