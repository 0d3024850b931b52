package alertdb

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default values applied by NewClient when the corresponding Config field
// is left at its zero value.
const (
	DefaultTimeout          = 30 * time.Second
	DefaultBatchConcurrency = 4
)

// Config holds configuration for the alert archive client.
type Config struct {
	// URL is the base endpoint of the alert archive
	// (e.g., "https://alert-archive.example.org"). If the scheme is
	// omitted, "http://" is assumed.
	URL string

	// Timeout for individual HTTP requests. Defaults to DefaultTimeout.
	Timeout time.Duration

	// BatchConcurrency bounds the number of in-flight requests issued by
	// GetAlerts. Defaults to DefaultBatchConcurrency.
	BatchConcurrency int
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := DefaultTimeout
	if v := os.Getenv("ALERTDB_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	concurrency := DefaultBatchConcurrency
	if v := os.Getenv("ALERTDB_BATCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			concurrency = n
		}
	}

	return &Config{
		URL:              os.Getenv("ALERTDB_URL"),
		Timeout:          timeout,
		BatchConcurrency: concurrency,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("alertdb: missing ALERTDB_URL")
	}
	return nil
}
