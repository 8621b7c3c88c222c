package usecase

import (
	"context"
	"time"

	"github.com/flashmart/checkout-service/internal/clock"
	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/metrics"
	holddto "github.com/flashmart/checkout-service/internal/usecase/dto/hold"
)

type HoldUsecase interface {
	CreateHold(ctx context.Context, input *holddto.CreateHoldInput) (*holddto.HoldOutput, error)
	GetHoldByID(ctx context.Context, holdID int64) (*domain.Hold, error)
	ReleaseExpiredHold(ctx context.Context, holdID int64) (bool, error)
	ReleaseExpiredHolds(ctx context.Context) (int, error)
}

type DefaultHoldUsecase struct {
	ProductRepo domain.ProductRepository
	HoldRepo    domain.HoldRepository
	TxManager   domain.TxManager
	Cache       domain.ProductCache
	Publisher   domain.OrderEventPublisher
	Clock       clock.Clock
	Metrics     *metrics.CheckoutMetrics
	HoldTTL     time.Duration
}

func NewDefaultHoldUsecase(
	productRepo domain.ProductRepository,
	holdRepo domain.HoldRepository,
	txManager domain.TxManager,
	cache domain.ProductCache,
	eventPublisher domain.OrderEventPublisher,
	clk clock.Clock,
	checkoutMetrics *metrics.CheckoutMetrics,
	holdTTL time.Duration,
) *DefaultHoldUsecase {
	return &DefaultHoldUsecase{
		ProductRepo: productRepo,
		HoldRepo:    holdRepo,
		TxManager:   txManager,
		Cache:       cache,
		Publisher:   eventPublisher,
		Clock:       clk,
		Metrics:     checkoutMetrics,
		HoldTTL:     holdTTL,
	}
}

func (uc *DefaultHoldUsecase) GetHoldByID(ctx context.Context, holdID int64) (*domain.Hold, error) {
	return uc.HoldRepo.GetHoldByID(ctx, holdID)
}
