package response

import "github.com/flashmart/checkout-service/internal/domain"

// ProductResponse emits price as a decimal string with exactly two
// fractional digits; binary floats never touch money on the wire.
type ProductResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          string `json:"price"`
	AvailableStock int    `json:"available_stock"`
	InStock        bool   `json:"in_stock"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price.StringFixed(2),
		AvailableStock: product.Stock,
		InStock:        product.InStock(),
	}
}
