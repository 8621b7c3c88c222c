package response

// WebhookResponse is not enveloped: settlement providers expect the flat
// acknowledgement shape.
type WebhookResponse struct {
	Message          string `json:"message"`
	AlreadyProcessed bool   `json:"already_processed"`
}
