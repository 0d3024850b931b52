package logger

import "os"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config holds configuration for the logger.
type Config struct {
	// Level selects the minimum level that is emitted. One of the level
	// constants above; anything else falls back to Info.
	Level string

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string

	// EnableTracing makes the context-aware logging methods extract trace
	// and span IDs from the context and include them in the entry.
	EnableTracing bool
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	return Config{
		Level:         os.Getenv("LOGGER_LEVEL"),
		ServiceName:   os.Getenv("LOGGER_SERVICE_NAME"),
		EnableTracing: os.Getenv("LOGGER_ENABLE_TRACING") == "true",
	}
}
