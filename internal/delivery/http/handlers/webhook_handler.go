package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/flashmart/checkout-service/internal/delivery/http/dto/request"
	"github.com/flashmart/checkout-service/internal/delivery/http/dto/response"
	webhookdto "github.com/flashmart/checkout-service/internal/usecase/dto/webhook"
	usecase "github.com/flashmart/checkout-service/internal/usecase/webhook"
)

type WebhookHandler struct {
	webhooks usecase.WebhookUsecase
}

func NewWebhookHandler(webhooks usecase.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// ProcessWebhook accepts a payment notification. The whole body is kept and
// stored alongside the decoded fields, so providers can send whatever extras
// they like.
func (h *WebhookHandler) ProcessWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	var req request.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeValidationFailed(w, map[string][]string{"body": {"must be valid JSON"}})
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeValidationFailed(w, details)
		return
	}

	output, err := h.webhooks.ProcessWebhook(r.Context(), &webhookdto.ProcessWebhookInput{
		IdempotencyKey: req.IdempotencyKey,
		OrderID:        req.OrderID,
		PaymentStatus:  req.PaymentStatus,
		RawPayload:     body,
	})
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.WebhookResponse{
		Message:          output.Message,
		AlreadyProcessed: output.AlreadyProcessed,
	})
}
