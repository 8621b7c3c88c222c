package productdto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}
