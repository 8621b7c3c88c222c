package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/flashmart/checkout-service/internal/delivery/http/dto/request"
	"github.com/flashmart/checkout-service/internal/delivery/http/dto/response"
	"github.com/flashmart/checkout-service/internal/domain"
	orderdto "github.com/flashmart/checkout-service/internal/usecase/dto/order"
	holduc "github.com/flashmart/checkout-service/internal/usecase/hold"
	usecase "github.com/flashmart/checkout-service/internal/usecase/order"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orders usecase.OrderUsecase
	holds  holduc.HoldUsecase
}

func NewOrderHandler(orders usecase.OrderUsecase, holds holduc.HoldUsecase) *OrderHandler {
	return &OrderHandler{orders: orders, holds: holds}
}

// CreateOrder converts a hold into an order. A hold_id that never existed
// is a validation failure; a hold that exists but cannot be used any more
// is a business rejection from the core.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationFailed(w, map[string][]string{"body": {"must be valid JSON"}})
		return
	}

	details := req.Validate()
	if req.HoldID > 0 {
		if _, err := h.holds.GetHoldByID(r.Context(), req.HoldID); err != nil {
			if errors.Is(err, domain.ErrHoldNotFound) {
				details["hold_id"] = append(details["hold_id"], "does not exist")
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

	output, err := h.orders.CreateOrderFromHold(r.Context(), &orderdto.CreateOrderInput{HoldID: req.HoldID})
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	writeData(w, http.StatusCreated, response.NewOrderResponse(output))
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: domain.ErrOrderNotFound.Error()})
		return
	}

	order, err := h.orders.GetOrderByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeBusinessError(w, err)
		return
	}

	writeData(w, http.StatusOK, response.NewOrderResponseFromDomain(order))
}
