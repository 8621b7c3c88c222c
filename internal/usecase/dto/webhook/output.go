package webhookdto

type WebhookOutput struct {
	Message          string
	AlreadyProcessed bool
}
