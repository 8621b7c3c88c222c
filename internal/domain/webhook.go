package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailure PaymentStatus = "failure"
)

// WebhookLog records one accepted payment-provider notification. The
// idempotency key is unique across all rows, so inserting the log is the
// linearisation point that makes webhook processing exactly-once.
type WebhookLog struct {
	ID             string
	IdempotencyKey string
	OrderID        *int64
	Status         PaymentStatus
	Payload        string
	ProcessedAt    time.Time
}
