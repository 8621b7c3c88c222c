package domain

import "time"

const (
	OrderEventCreated   = "order.created"
	OrderEventPaid      = "order.paid"
	OrderEventCancelled = "order.cancelled"
	HoldEventExpired    = "hold.expired"
)

// OrderEvent is published to the events topic after a state-changing commit.
// TotalPrice is a decimal string with two fractional digits.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    int64     `json:"order_id,omitempty"`
	HoldID     int64     `json:"hold_id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice string    `json:"total_price,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type OrderEventPublisher interface {
	PublishOrderEvent(event OrderEvent) error
}
