package response

import (
	"time"

	holddto "github.com/flashmart/checkout-service/internal/usecase/dto/hold"
)

type HoldResponse struct {
	HoldID    int64     `json:"hold_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewHoldResponse(output *holddto.HoldOutput) HoldResponse {
	return HoldResponse{
		HoldID:    output.HoldID,
		ExpiresAt: output.ExpiresAt.UTC(),
	}
}
