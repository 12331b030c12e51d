package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

const namespace = "outsourcing"

// Search outcomes.
const (
	SearchSucceeded = "success"
	SearchEmpty     = "empty"
	SearchFailed    = "error"
)

// Metrics owns a dedicated registry with HTTP and ledger collectors.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	searches      *prometheus.CounterVec
	ordersCreated prometheus.Counter
	statusUpdates *prometheus.CounterVec
	suppliers     prometheus.Counter

	ledgerOrders      *prometheus.GaugeVec
	ledgerValue       prometheus.Gauge
	ledgerAvgDelivery prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "product_searches_total",
			Help:      "Product searches by outcome",
		}, []string{"outcome"}),
		ordersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Outsourced orders placed",
		}),
		statusUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_updates_total",
			Help:      "Order status changes by target status",
		}, []string{"status"}),
		suppliers: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suppliers_added_total",
			Help:      "Suppliers added to the registry",
		}),
		ledgerOrders: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_orders",
			Help:      "Orders in the ledger by state",
		}, []string{"state"}),
		ledgerValue: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_value_total",
			Help:      "Sum of order totals in the ledger",
		}),
		ledgerAvgDelivery: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_avg_delivery_days",
			Help:      "Average delivery time of delivered orders in days",
		}),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records a served HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, code).Inc()
	m.httpDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// SearchCompleted counts a product search.
func (m *Metrics) SearchCompleted(outcome string) {
	m.searches.WithLabelValues(outcome).Inc()
}

// OrderCreated counts a placed order.
func (m *Metrics) OrderCreated() {
	m.ordersCreated.Inc()
}

// StatusUpdated counts an order moved to status.
func (m *Metrics) StatusUpdated(status model.OrderStatus) {
	m.statusUpdates.WithLabelValues(string(status)).Inc()
}

// SupplierAdded counts a registry insertion.
func (m *Metrics) SupplierAdded() {
	m.suppliers.Inc()
}

// PublishStatistics mirrors ledger aggregates into gauges.
func (m *Metrics) PublishStatistics(stats model.OrderStatistics) {
	m.ledgerOrders.WithLabelValues("total").Set(float64(stats.TotalOrders))
	m.ledgerOrders.WithLabelValues("pending").Set(float64(stats.PendingOrders))
	m.ledgerOrders.WithLabelValues("completed").Set(float64(stats.CompletedOrders))
	m.ledgerValue.Set(stats.TotalValue)
	m.ledgerAvgDelivery.Set(float64(stats.AvgDeliveryTime))
}
