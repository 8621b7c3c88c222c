package setup

import (
	holduc "github.com/flashmart/checkout-service/internal/usecase/hold"
	orderuc "github.com/flashmart/checkout-service/internal/usecase/order"
	productuc "github.com/flashmart/checkout-service/internal/usecase/product"
	webhookuc "github.com/flashmart/checkout-service/internal/usecase/webhook"
)

type UseCases struct {
	ProductUsecase productuc.ProductUsecase
	HoldUsecase    holduc.HoldUsecase
	OrderUsecase   orderuc.OrderUsecase
	WebhookUsecase webhookuc.WebhookUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	repos := deps.Repositories

	productUsecase := productuc.NewDefaultProductUsecase(
		repos.ProductRepo,
		deps.Cache,
		deps.Config.Checkout.ProductCacheTTL,
	)

	holdUsecase := holduc.NewDefaultHoldUsecase(
		repos.ProductRepo,
		repos.HoldRepo,
		repos.TxManager,
		deps.Cache,
		deps.Publisher,
		deps.Clock,
		deps.Metrics,
		deps.Config.Checkout.HoldTTL,
	)

	orderUsecase := orderuc.NewDefaultOrderUsecase(
		repos.OrderRepo,
		repos.HoldRepo,
		repos.ProductRepo,
		repos.TxManager,
		deps.Cache,
		deps.Publisher,
		deps.Clock,
		deps.Metrics,
	)

	webhookUsecase := webhookuc.NewDefaultWebhookUsecase(
		repos.WebhookRepo,
		repos.OrderRepo,
		orderUsecase,
		repos.TxManager,
		deps.Publisher,
		deps.Clock,
		deps.Metrics,
	)

	return &UseCases{
		ProductUsecase: productUsecase,
		HoldUsecase:    holdUsecase,
		OrderUsecase:   orderUsecase,
		WebhookUsecase: webhookUsecase,
	}
}
