package metrics

import "os"

// DefaultMetricsAddress is used when no address is configured.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration structure for the Prometheus metrics server.
type Config struct {
	// Address determines the network address where the Prometheus
	// metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"          → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9100" → Listen only on localhost, port 9100
	//
	// Default: ":9090"
	Address string

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	//
	// When true, metrics such as goroutine count, GC stats, and CPU usage
	// will be included automatically. Disable only if you want full
	// manual control over registered collectors.
	EnableDefaultCollectors bool

	// ServiceName identifies the service exposing metrics. It is added as a
	// constant service="<name>" label to every metric, which distinguishes
	// metrics between services in shared Prometheus deployments.
	ServiceName string
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	address := os.Getenv("METRICS_ADDRESS")
	if address == "" {
		address = DefaultMetricsAddress
	}

	return Config{
		Address:                 address,
		EnableDefaultCollectors: os.Getenv("METRICS_DISABLE_DEFAULT_COLLECTORS") != "true",
		ServiceName:             os.Getenv("METRICS_SERVICE_NAME"),
	}
}
