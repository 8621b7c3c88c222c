package request

const maxIdempotencyKeyLength = 255

// WebhookRequest carries the fields the processor needs; providers may send
// more, which travel untouched in the raw payload.
type WebhookRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	OrderID        int64  `json:"order_id"`
	PaymentStatus  string `json:"payment_status"`
}

// Validate checks shape only. Order existence is deliberately not checked
// here: a webhook racing ahead of its order is business behaviour, not a
// malformed request.
func (r *WebhookRequest) Validate() map[string][]string {
	details := map[string][]string{}
	if r.IdempotencyKey == "" {
		details["idempotency_key"] = append(details["idempotency_key"], "is required")
	} else if len(r.IdempotencyKey) > maxIdempotencyKeyLength {
		details["idempotency_key"] = append(details["idempotency_key"], "must be at most 255 characters")
	}
	if r.OrderID <= 0 {
		details["order_id"] = append(details["order_id"], "is required")
	}
	if r.PaymentStatus != "success" && r.PaymentStatus != "failure" {
		details["payment_status"] = append(details["payment_status"], "must be one of: success, failure")
	}
	return details
}
