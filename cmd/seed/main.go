package main

import (
	"context"
	"log"

	"github.com/flashmart/checkout-service/internal/app/setup"
	productdto "github.com/flashmart/checkout-service/internal/usecase/dto/product"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Seeds a demo catalogue for local runs and load tests. Running it twice
// inserts the catalogue twice; wipe the products table first if that matters.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading config from environment")
	}

	deps, err := setup.InitializeDependencies("checkout-seed")
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer deps.Logger.Sync()

	usecases := setup.InitializeUseCases(deps)

	catalogue := []*productdto.CreateProductInput{
		{
			Name:        "Blast X900 Headphones",
			Description: "Wireless noise-cancelling over-ears, the flash sale hero item",
			Price:       decimal.RequireFromString("99.99"),
			Stock:       100,
		},
		{
			Name:        "Volt 20000 Power Bank",
			Description: "20000 mAh battery with two USB-C ports",
			Price:       decimal.RequireFromString("39.90"),
			Stock:       500,
		},
		{
			Name:        "Nimbus Mechanical Keyboard",
			Description: "Hot-swappable 75% board, tactile switches",
			Price:       decimal.RequireFromString("129.00"),
			Stock:       250,
		},
		{
			Name:        "Drift Gaming Mouse",
			Description: "Lightweight wireless mouse, 8k polling",
			Price:       decimal.RequireFromString("59.50"),
			Stock:       1000,
		},
	}

	ctx := context.Background()
	for _, input := range catalogue {
		id, err := usecases.ProductUsecase.CreateProduct(ctx, input)
		if err != nil {
			zap.L().Fatal("failed to seed product", zap.String("name", input.Name), zap.Error(err))
		}
		zap.L().Info("seeded product",
			zap.Int64("product_id", id),
			zap.String("name", input.Name),
			zap.String("price", input.Price.StringFixed(2)),
			zap.Int("stock", input.Stock))
	}
	zap.L().Info("seeding complete", zap.Int("products", len(catalogue)))
}
