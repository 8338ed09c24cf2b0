package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	alertsGenerated     *prometheus.CounterVec
	alertComputation    prometheus.Histogram
	oracleCalls         *prometheus.CounterVec
	oracleCallDuration  *prometheus.HistogramVec
	circuitBreakerState *prometheus.GaugeVec
	importsTotal        *prometheus.CounterVec
	importBatchSize     prometheus.Histogram
	forecastRequests    *prometheus.CounterVec
	analyticsRequests   *prometheus.CounterVec
	analyticsDuration   prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		alertsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spending_alerts_generated_total",
				Help: "Total number of spending alerts generated by type and severity",
			},
			[]string{"type", "severity"},
		),
		alertComputation: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "alert_computation_duration_milliseconds",
				Help:    "Spending alert computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		oracleCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oracle_calls_total",
				Help: "Total number of generative model calls by operation and status",
			},
			[]string{"operation", "status"},
		),
		oracleCallDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oracle_call_duration_milliseconds",
				Help:    "Generative model call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
			[]string{"operation"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		importsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_imports_total",
				Help: "Total number of transaction import attempts by outcome",
			},
			[]string{"outcome"},
		),
		importBatchSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "import_batch_size",
				Help:    "Number of messages per batch import request",
				Buckets: prometheus.LinearBuckets(1, 5, 10),
			},
		),
		forecastRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cash_flow_forecast_requests_total",
				Help: "Total number of cash flow forecast requests",
			},
			[]string{"status"},
		),
		analyticsRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of analytics requests by endpoint",
			},
			[]string{"endpoint", "status"},
		),
		analyticsDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_computation_duration_milliseconds",
				Help:    "Analytics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "alert.generated":
		m.alertsGenerated.WithLabelValues(tags["type"], tags["severity"]).Inc()
	case "oracle.call":
		m.oracleCalls.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "import.attempt":
		if outcome := tags["outcome"]; outcome != "" {
			m.importsTotal.WithLabelValues(outcome).Inc()
		}
	case "forecast.request":
		if status := tags["status"]; status != "" {
			m.forecastRequests.WithLabelValues(status).Inc()
		}
	case "analytics.request":
		m.analyticsRequests.WithLabelValues(tags["endpoint"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "alert.computation":
		m.alertComputation.Observe(float64(duration.Milliseconds()))
	case "oracle.parse", "oracle.forecast", "oracle.enrich":
		m.oracleCallDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	case "analytics.computation":
		m.analyticsDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "import.batch_size":
		m.importBatchSize.Observe(value)
	}
}
