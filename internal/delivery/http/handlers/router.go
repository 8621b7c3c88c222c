package handlers

import (
	"net/http"

	"github.com/flashmart/checkout-service/internal/infrastructure/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter assembles the checkout API. Numeric route constraints make a
// malformed id a plain 404 instead of a handler concern.
func NewRouter(
	productHandler *ProductHandler,
	holdHandler *HoldHandler,
	orderHandler *OrderHandler,
	webhookHandler *WebhookHandler,
	healthHandler *HealthHandler,
	checkoutMetrics *metrics.CheckoutMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(zap.L(), checkoutMetrics))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthHandler.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/products/{id:[0-9]+}", productHandler.GetProduct)
	r.Post("/holds", holdHandler.CreateHold)
	r.Post("/orders", orderHandler.CreateOrder)
	r.Get("/orders/{id:[0-9]+}", orderHandler.GetOrder)
	r.Post("/payments/webhook", webhookHandler.ProcessWebhook)

	return r
}
