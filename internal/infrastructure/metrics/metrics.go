package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const namespace = "checkmaster"

// Metrics holds the application collectors. A nil *Metrics is valid and
// records nothing, so use cases can run without a registry in tests.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	TemplatesSavedTotal  prometheus.Counter
	OrdersFinalizedTotal prometheus.Counter
	OrderValue           prometheus.Histogram
	StoreErrorsTotal     *prometheus.CounterVec

	ExtractionsTotal   *prometheus.CounterVec
	ExtractionDuration prometheus.Histogram
	PaymentsTotal      *prometheus.CounterVec

	logger *zap.Logger
}

// New registers the collectors with the default registry.
func New(logger *zap.Logger) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, logger)
}

// NewWithRegistry registers the collectors with a custom registry.
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	factory := promauto.With(registerer)
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "endpoint"},
		),
		TemplatesSavedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "templates_saved_total",
				Help:      "Total number of template saves",
			},
		),
		OrdersFinalizedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_finalized_total",
				Help:      "Total number of service orders appended to the log",
			},
		),
		OrderValue: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "order_value",
				Help:      "Total value of finalized service orders",
				Buckets:   []float64{0, 50, 80, 100, 150, 250, 500, 1000, 2500},
			},
		),
		StoreErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_errors_total",
				Help:      "Total number of persistence failures",
			},
			[]string{"operation"},
		),
		ExtractionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vehicle_extractions_total",
				Help:      "Total number of vehicle-data extraction calls",
			},
			[]string{"outcome"},
		),
		ExtractionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "vehicle_extraction_duration_seconds",
				Help:      "Vehicle-data extraction duration in seconds",
				Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
			},
		),
		PaymentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_payments_total",
				Help:      "Total number of order payment attempts",
			},
			[]string{"outcome"},
		),
		logger: logger,
	}
}

func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.safeExecute("RecordHTTPRequest", func() {
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

func (m *Metrics) RecordTemplateSaved() {
	if m == nil {
		return
	}
	m.safeExecute("RecordTemplateSaved", func() {
		m.TemplatesSavedTotal.Inc()
	})
}

func (m *Metrics) RecordOrderFinalized(total decimal.Decimal) {
	if m == nil {
		return
	}
	m.safeExecute("RecordOrderFinalized", func() {
		m.OrdersFinalizedTotal.Inc()
		m.OrderValue.Observe(total.InexactFloat64())
	})
}

func (m *Metrics) RecordStoreError(operation string) {
	if m == nil {
		return
	}
	m.safeExecute("RecordStoreError", func() {
		m.StoreErrorsTotal.WithLabelValues(operation).Inc()
	})
}

// RecordExtraction counts an extraction call. outcome is one of success,
// empty, failure or timeout.
func (m *Metrics) RecordExtraction(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.safeExecute("RecordExtraction", func() {
		m.ExtractionsTotal.WithLabelValues(outcome).Inc()
		m.ExtractionDuration.Observe(duration.Seconds())
	})
}

func (m *Metrics) RecordPayment(outcome string) {
	if m == nil {
		return
	}
	m.safeExecute("RecordPayment", func() {
		m.PaymentsTotal.WithLabelValues(outcome).Inc()
	})
}

// ShouldSkipEndpoint reports whether a path is excluded from HTTP metrics.
func ShouldSkipEndpoint(path string) bool {
	switch path {
	case "/metrics", "/ping", "/v1/ping", "/health":
		return true
	}
	return false
}

// safeExecute wraps metric operations with panic recovery
func (m *Metrics) safeExecute(operation string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic in metrics operation",
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}
