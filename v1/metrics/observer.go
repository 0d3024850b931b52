package metrics

import (
	"github.com/skysurvey/alertdb/v1/observability"
)

// MetricsObserver bridges the library's observability hook into Prometheus.
// Attach it to an archive client to have every fetch and decode operation
// recorded on the built-in vectors:
//
//	m := metrics.NewMetrics(cfg)
//	client.WithObserver(metrics.NewObserver(m))
type MetricsObserver struct {
	metrics *Metrics
}

// NewObserver creates an observer that records operations on m.
func NewObserver(m *Metrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

// ObserveOperation records one completed operation: a count with its result
// status, its duration, and the payload size when one was reported.
func (o *MetricsObserver) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}

	o.metrics.fetchesTotal.WithLabelValues(ctx.Operation, status).Inc()
	o.metrics.fetchDuration.WithLabelValues(ctx.Operation).Observe(ctx.Duration.Seconds())

	if ctx.Size > 0 {
		o.metrics.payloadBytes.WithLabelValues(ctx.Operation).Observe(float64(ctx.Size))
	}
}
