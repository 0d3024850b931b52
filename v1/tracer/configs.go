package tracer

import "os"

// Config holds configuration for the tracer.
type Config struct {
	// ServiceName identifies the service in exported traces.
	ServiceName string

	// AppEnv tags spans with the deployment environment
	// (e.g., "production", "staging").
	AppEnv string

	// EnableExport turns on the OTLP HTTP exporter. When false the tracer
	// provider is still installed (spans propagate), but nothing is exported.
	// The exporter endpoint is taken from the standard OTEL_EXPORTER_OTLP_*
	// environment variables.
	EnableExport bool
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	return Config{
		ServiceName:  os.Getenv("TRACER_SERVICE_NAME"),
		AppEnv:       os.Getenv("APP_ENV"),
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
	}
}
