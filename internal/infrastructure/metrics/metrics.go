package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CheckoutMetrics covers the reservation funnel: holds in, orders out,
// webhooks settled, stock returned.
type CheckoutMetrics struct {
	HoldsCreatedTotal  prometheus.CounterVec
	HoldsRejectedTotal prometheus.CounterVec
	HoldsExpiredTotal  prometheus.Counter

	OrdersCreatedTotal   prometheus.Counter
	OrdersPaidTotal      prometheus.Counter
	OrdersCancelledTotal prometheus.Counter

	WebhooksProcessedTotal prometheus.CounterVec

	StockReturnedTotal prometheus.Counter

	SweepDuration   prometheus.Histogram
	RequestDuration prometheus.HistogramVec
}

// NewCheckoutMetrics registers against reg so test binaries can use an
// isolated registry. Pass prometheus.DefaultRegisterer in main.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	factory := promauto.With(reg)

	return &CheckoutMetrics{
		HoldsCreatedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_holds_created_total",
				Help: "Holds created, by product",
			},
			[]string{"product_id"},
		),

		HoldsRejectedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_holds_rejected_total",
				Help: "Hold requests rejected, by reason",
			},
			[]string{"reason"},
		),

		HoldsExpiredTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_holds_expired_total",
				Help: "Holds released by the expiry sweeper",
			},
		),

		OrdersCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_orders_created_total",
				Help: "Orders created from holds",
			},
		),

		OrdersPaidTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_orders_paid_total",
				Help: "Orders settled as paid",
			},
		),

		OrdersCancelledTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_orders_cancelled_total",
				Help: "Orders cancelled after failed payment",
			},
		),

		WebhooksProcessedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_webhooks_processed_total",
				Help: "Payment webhooks by outcome",
			},
			[]string{"outcome"},
		),

		StockReturnedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_stock_returned_total",
				Help: "Units returned to stock by expiry or cancellation",
			},
		),

		SweepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "checkout_sweep_duration_seconds",
				Help:    "Duration of one sweeper tick",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),

		RequestDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "checkout_http_request_duration_seconds",
				Help:    "HTTP request duration by route",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (m *CheckoutMetrics) RecordHoldCreated(productID string) {
	m.HoldsCreatedTotal.WithLabelValues(productID).Inc()
}

func (m *CheckoutMetrics) RecordHoldRejected(reason string) {
	m.HoldsRejectedTotal.WithLabelValues(reason).Inc()
}

func (m *CheckoutMetrics) RecordHoldExpired(quantity int) {
	m.HoldsExpiredTotal.Inc()
	m.StockReturnedTotal.Add(float64(quantity))
}

func (m *CheckoutMetrics) RecordOrderCreated() {
	m.OrdersCreatedTotal.Inc()
}

func (m *CheckoutMetrics) RecordOrderPaid() {
	m.OrdersPaidTotal.Inc()
}

func (m *CheckoutMetrics) RecordOrderCancelled(quantity int) {
	m.OrdersCancelledTotal.Inc()
	m.StockReturnedTotal.Add(float64(quantity))
}

func (m *CheckoutMetrics) RecordWebhookProcessed(outcome string) {
	m.WebhooksProcessedTotal.WithLabelValues(outcome).Inc()
}

func (m *CheckoutMetrics) RecordSweepDuration(seconds float64) {
	m.SweepDuration.Observe(seconds)
}

func (m *CheckoutMetrics) RecordHTTPRequest(method, route, status string, seconds float64) {
	m.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}
