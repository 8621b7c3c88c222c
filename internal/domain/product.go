package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is sellable inventory. Stock is the number of units neither held
// nor sold; it is mutated only inside storage transactions.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}
