package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flashmart/checkout-service/internal/delivery/http/dto/request"
	"github.com/flashmart/checkout-service/internal/delivery/http/dto/response"
	"github.com/flashmart/checkout-service/internal/domain"
	holddto "github.com/flashmart/checkout-service/internal/usecase/dto/hold"
	usecase "github.com/flashmart/checkout-service/internal/usecase/hold"
	productuc "github.com/flashmart/checkout-service/internal/usecase/product"
)

type HoldHandler struct {
	holds    usecase.HoldUsecase
	products productuc.ProductUsecase
}

func NewHoldHandler(holds usecase.HoldUsecase, products productuc.ProductUsecase) *HoldHandler {
	return &HoldHandler{holds: holds, products: products}
}

// CreateHold validates shape and product existence at the edge (422), then
// lets the hold manager fight out stock contention (400 on loss).
func (h *HoldHandler) CreateHold(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationFailed(w, map[string][]string{"body": {"must be valid JSON"}})
		return
	}

	details := req.Validate()
	if req.ProductID > 0 {
		if _, err := h.products.GetProductByID(r.Context(), req.ProductID); err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				details["product_id"] = append(details["product_id"], "does not exist")
			} else {
				writeBusinessError(w, err)
				return
			}
		}
	}
	if len(details) > 0 {
		writeValidationFailed(w, details)
		return
	}

	output, err := h.holds.CreateHold(r.Context(), &holddto.CreateHoldInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	writeData(w, http.StatusCreated, response.NewHoldResponse(output))
}
