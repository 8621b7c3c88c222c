package webhookdto

type ProcessWebhookInput struct {
	IdempotencyKey string
	OrderID        int64
	PaymentStatus  string
	RawPayload     []byte
}
