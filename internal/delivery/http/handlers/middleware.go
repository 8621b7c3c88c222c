package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/flashmart/checkout-service/internal/infrastructure/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request and feeds the duration histogram.
// The metric is labelled by route pattern, not raw path, to keep
// cardinality bounded.
func RequestLogger(logger *zap.Logger, checkoutMetrics *metrics.CheckoutMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			took := time.Since(start)
			checkoutMetrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(ww.Status()), took.Seconds())
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", took),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
