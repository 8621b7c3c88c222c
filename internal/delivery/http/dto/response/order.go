package response

import (
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
	orderdto "github.com/flashmart/checkout-service/internal/usecase/dto/order"
)

type OrderResponse struct {
	OrderID    int64      `json:"order_id"`
	ProductID  int64      `json:"product_id"`
	Quantity   int        `json:"quantity"`
	TotalPrice string     `json:"total_price"`
	Status     string     `json:"status"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewOrderResponse(output *orderdto.OrderOutput) OrderResponse {
	return OrderResponse{
		OrderID:    output.OrderID,
		ProductID:  output.ProductID,
		Quantity:   output.Quantity,
		TotalPrice: output.TotalPrice.StringFixed(2),
		Status:     string(output.Status),
		PaidAt:     output.PaidAt,
		CreatedAt:  output.CreatedAt.UTC(),
	}
}

func NewOrderResponseFromDomain(order *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:    order.ID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice.StringFixed(2),
		Status:     string(order.Status),
		PaidAt:     order.PaidAt,
		CreatedAt:  order.CreatedAt.UTC(),
	}
}
