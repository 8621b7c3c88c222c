package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flashmart/checkout-service/internal/delivery/http/dto/response"
	"github.com/flashmart/checkout-service/internal/domain"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func writeData(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, response.Envelope{Data: v})
}

func writeValidationFailed(w http.ResponseWriter, details map[string][]string) {
	writeJSON(w, http.StatusUnprocessableEntity, response.ErrorResponse{
		Error:   "Validation failed",
		Details: details,
	})
}

// writeBusinessError maps expected checkout outcomes onto 400 with their
// stable message. Anything unrecognised is an internal fault: logged in
// full, surfaced opaquely.
func writeBusinessError(w http.ResponseWriter, err error) {
	var insufficientStock *domain.InsufficientStockError
	var holdNotActive *domain.HoldNotActiveError

	switch {
	case errors.As(err, &insufficientStock),
		errors.As(err, &holdNotActive),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrHoldNotFound),
		errors.Is(err, domain.ErrHoldExpired),
		errors.Is(err, domain.ErrHoldAlreadyUsed),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrOrderNotFoundForWebhook):
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		zap.L().Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: "Internal server error"})
	}
}
