package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementFetches increments the fetch counter for an operation with a
// result status ("success" or "error").
// Example: metrics.IncrementFetches("fetch_alert", "success")
func (m *Metrics) IncrementFetches(operation, status string) {
	m.fetchesTotal.WithLabelValues(operation, status).Inc()
}

// RecordFetchDuration records the duration (in seconds) of an operation.
// Example: defer metrics.RecordFetchDuration(time.Now(), "get_alert")
func (m *Metrics) RecordFetchDuration(start time.Time, operation string) {
	duration := time.Since(start).Seconds()
	m.fetchDuration.WithLabelValues(operation).Observe(duration)
}

// ObservePayloadSize records the byte size of a payload handled by an operation.
// Example: metrics.ObservePayloadSize("fetch_alert", int64(len(raw)))
func (m *Metrics) ObservePayloadSize(operation string, size int64) {
	m.payloadBytes.WithLabelValues(operation).Observe(float64(size))
}

// IncrementSchemaCache counts a schema cache lookup result ("hit" or "miss").
func (m *Metrics) IncrementSchemaCache(result string) {
	m.schemaCacheTotal.WithLabelValues(result).Inc()
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

// createCounterVec defines a new CounterVec with standard options.
// Used internally by NewMetrics to maintain consistency.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
// Used internally by NewMetrics for latency and size tracking.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec safely for resource monitoring.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
