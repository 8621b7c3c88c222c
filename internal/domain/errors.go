package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors carry the exact messages surfaced to API clients; handlers
// and tests match on the error value, never on the text.
var (
	ErrProductNotFound = errors.New("Product not found")
	ErrHoldNotFound    = errors.New("Hold not found")
	ErrHoldExpired     = errors.New("Hold has expired")
	ErrHoldAlreadyUsed = errors.New("Hold has already been used for an order")
	ErrOrderNotFound   = errors.New("Order not found")

	// ErrOrderNotFoundForWebhook is returned when a payment notification
	// references an order that does not exist yet; providers retry on it.
	ErrOrderNotFoundForWebhook = errors.New("Order not found - webhook may have arrived early")

	// ErrDuplicateWebhook marks an idempotency-key collision. It never
	// reaches clients: the processor converts it into a replay of the
	// original outcome.
	ErrDuplicateWebhook = errors.New("webhook already processed")
)

// InsufficientStockError is returned when a hold asks for more units than
// remain unheld and unsold.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Available: %d", e.Available)
}

// HoldNotActiveError is returned when an order references a hold that was
// already consumed or expired.
type HoldNotActiveError struct {
	Status HoldStatus
}

func (e *HoldNotActiveError) Error() string {
	return fmt.Sprintf("Hold is %s and cannot be used", e.Status)
}
