package usecase

import (
	"context"

	"github.com/flashmart/checkout-service/internal/clock"
	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/metrics"
	webhookdto "github.com/flashmart/checkout-service/internal/usecase/dto/webhook"
	orderuc "github.com/flashmart/checkout-service/internal/usecase/order"
)

type WebhookUsecase interface {
	ProcessWebhook(ctx context.Context, input *webhookdto.ProcessWebhookInput) (*webhookdto.WebhookOutput, error)
}

type DefaultWebhookUsecase struct {
	WebhookRepo domain.WebhookLogRepository
	OrderRepo   domain.OrderRepository
	Orders      orderuc.OrderUsecase
	TxManager   domain.TxManager
	Publisher   domain.OrderEventPublisher
	Clock       clock.Clock
	Metrics     *metrics.CheckoutMetrics
}

func NewDefaultWebhookUsecase(
	webhookRepo domain.WebhookLogRepository,
	orderRepo domain.OrderRepository,
	orders orderuc.OrderUsecase,
	txManager domain.TxManager,
	eventPublisher domain.OrderEventPublisher,
	clk clock.Clock,
	checkoutMetrics *metrics.CheckoutMetrics,
) *DefaultWebhookUsecase {
	return &DefaultWebhookUsecase{
		WebhookRepo: webhookRepo,
		OrderRepo:   orderRepo,
		Orders:      orders,
		TxManager:   txManager,
		Publisher:   eventPublisher,
		Clock:       clk,
		Metrics:     checkoutMetrics,
	}
}
