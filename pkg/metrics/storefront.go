package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records upstream API calls, cart mutations, and order outcomes.
type StorefrontMetrics struct {
	upstreamDuration *prometheus.HistogramVec
	upstreamRequests *prometheus.CounterVec
	cartOps          *prometheus.CounterVec
	orders           *prometheus.CounterVec
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bakery_api_request_duration_seconds",
		Help:    "Duration of upstream bakery API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	upstreamRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bakery_api_requests_total",
		Help: "Upstream bakery API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Cart store mutations by operation.",
	}, []string{"operation"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_submitted_total",
		Help: "Pickup order submissions by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(upstreamDuration, upstreamRequests, cartOps, orders)
	return &StorefrontMetrics{
		upstreamDuration: upstreamDuration,
		upstreamRequests: upstreamRequests,
		cartOps:          cartOps,
		orders:           orders,
	}
}

// ObserveUpstream records one upstream request with its duration and outcome.
func (m *StorefrontMetrics) ObserveUpstream(endpoint, outcome string, duration time.Duration) {
	if m == nil || m.upstreamDuration == nil {
		return
	}
	endpoint = normalizeLabel(endpoint)
	m.upstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	m.upstreamRequests.WithLabelValues(endpoint, normalizeLabel(outcome)).Inc()
}

// IncCartOp increments the counter for the named cart mutation.
func (m *StorefrontMetrics) IncCartOp(operation string) {
	if m == nil || m.cartOps == nil {
		return
	}
	m.cartOps.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncOrder increments the order submission counter for the given outcome.
func (m *StorefrontMetrics) IncOrder(outcome string) {
	if m == nil || m.orders == nil {
		return
	}
	m.orders.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
