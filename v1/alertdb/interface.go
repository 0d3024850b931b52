package alertdb

import (
	"context"

	"github.com/linkedin/goavro/v2"
)

// Client provides access to archived alert packets and their schemas,
// fetching them over HTTP.
//
// This interface is implemented by the concrete *ArchiveClient type.
type Client interface {
	// GetRawAlertBytes retrieves the verbatim raw bytes of an alert packet,
	// as sent out over the alert stream: a 5-byte wire framing header
	// followed by a binary Avro payload. The gzip transport encoding is
	// stripped; no framing validation happens at this layer.
	GetRawAlertBytes(ctx context.Context, alertID uint64) ([]byte, error)

	// GetSchemaBytes retrieves the UTF-8 JSON text of an alert schema
	// document by its numeric identifier. The body is returned unmodified.
	GetSchemaBytes(ctx context.Context, schemaID uint32) ([]byte, error)

	// ResolveSchema returns the compiled codec for a schema identifier,
	// fetching and parsing the schema document at most once per identifier
	// for the lifetime of the client.
	ResolveSchema(ctx context.Context, schemaID uint32) (*goavro.Codec, error)

	// GetAlert retrieves and deserializes an archived alert packet by ID,
	// returning the fully decoded record.
	GetAlert(ctx context.Context, alertID uint64) (map[string]interface{}, error)

	// GetAlerts retrieves and deserializes multiple alert packets with
	// bounded concurrency, preserving input order. It fails fast on the
	// first error.
	GetAlerts(ctx context.Context, alertIDs []uint64) ([]map[string]interface{}, error)
}

// Logger defines the interface for logging operations in the alertdb package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}
