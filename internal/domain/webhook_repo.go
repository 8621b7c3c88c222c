package domain

import "context"

type WebhookLogRepository interface {
	// CreateWebhookLog inserts the log row for one delivery. A key collision
	// fails with ErrDuplicateWebhook; the insert is the idempotency gate.
	CreateWebhookLog(ctx context.Context, log *WebhookLog) error

	// GetWebhookLogByKey returns (nil, nil) when no delivery with this key
	// has been recorded yet.
	GetWebhookLogByKey(ctx context.Context, idempotencyKey string) (*WebhookLog, error)

	// SetWebhookLogOrder points an already-inserted log row at the order it
	// settled. Logs for deliveries that arrived before their order keep a
	// NULL order id forever.
	SetWebhookLogOrder(ctx context.Context, logID string, orderID int64) error
}
