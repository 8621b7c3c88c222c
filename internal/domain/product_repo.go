package domain

import "context"

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (int64, error)
	GetProductByID(ctx context.Context, productID int64) (*Product, error)

	// DecrementStock atomically subtracts quantity from the product's stock
	// and reports false when the remaining stock was insufficient. No row is
	// changed in the false case.
	DecrementStock(ctx context.Context, productID int64, quantity int) (bool, error)

	// IncrementStock returns quantity units to the product's stock.
	IncrementStock(ctx context.Context, productID int64, quantity int) error
}
