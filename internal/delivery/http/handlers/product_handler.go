package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/flashmart/checkout-service/internal/delivery/http/dto/response"
	"github.com/flashmart/checkout-service/internal/domain"
	usecase "github.com/flashmart/checkout-service/internal/usecase/product"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	products usecase.ProductUsecase
}

func NewProductHandler(products usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

// GetProduct serves reads through the cache; the stock figure may trail the
// database by a beat, which checkout tolerates.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: domain.ErrProductNotFound.Error()})
		return
	}

	product, err := h.products.GetProductByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeBusinessError(w, err)
		return
	}

	writeData(w, http.StatusOK, response.NewProductResponse(product))
}
