package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
//
// Besides the generic Create* factories, it carries built-in vectors for the
// alert archive client: fetch counts and latencies per operation, decoded
// payload sizes, and schema cache hit/miss counts.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	// Core built-in metrics for archive client operations
	fetchesTotal     *prometheus.CounterVec
	fetchDuration    *prometheus.HistogramVec
	payloadBytes     *prometheus.HistogramVec
	schemaCacheTotal *prometheus.CounterVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers default system
// collectors, wraps all metrics with a constant `service` label, and creates
// an HTTP server exposing the /metrics endpoint.
//
// Example:
//
//	cfg := metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "alert-archive-client",
//	    EnableDefaultCollectors: true,
//	}
//	metricsInstance := metrics.NewMetrics(cfg)
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	// Create a new isolated Prometheus registry for this service.
	// This avoids metric collisions when multiple services run in the same process.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service will automatically include the label:
	//   service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	// Define default metrics using helpers
	m.fetchesTotal = createCounterVec("archive_fetches_total", "Total number of archive fetch operations", []string{"operation", "status"})
	m.fetchDuration = createHistogramVec("archive_fetch_duration_seconds", "Duration of archive operations in seconds", []string{"operation"}, prometheus.DefBuckets)
	m.payloadBytes = createHistogramVec("archive_payload_bytes", "Size in bytes of payloads handled per operation", []string{"operation"}, prometheus.ExponentialBuckets(64, 4, 10))
	m.schemaCacheTotal = createCounterVec("schema_cache_total", "Schema cache lookups by result (hit or miss)", []string{"result"})

	wrappedRegistry.MustRegister(
		m.fetchesTotal,
		m.fetchDuration,
		m.payloadBytes,
		m.schemaCacheTotal,
	)

	// Register standard collectors if enabled.
	// These provide essential runtime metrics for Go processes:
	//   - GoCollector: Memory usage, goroutines, GC stats
	//   - ProcessCollector: CPU, file descriptors, memory stats
	//   - BuildInfoCollector: Binary version/build info
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}
