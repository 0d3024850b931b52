// Package alertdb provides a client for the alert archive service.
//
// The archive stores every alert packet published on the alert stream,
// verbatim, together with the Avro schema documents the packets were
// encoded with. This package fetches both over HTTP and decodes packets
// back into structured records.
//
// Core Features:
//   - HTTP client for the alert archive's /v1/alerts and /v1/schemas routes
//   - Wire framing header validation (see the wire package)
//   - Schema resolution with per-client caching: one fetch per schema ID
//   - Schema-driven binary Avro decoding via goavro
//   - Bounded-concurrency batch retrieval
//   - Optional observability hooks (see the observability package)
//
// Basic Usage:
//
//	import "github.com/skysurvey/alertdb/v1/alertdb"
//
//	client, err := alertdb.NewClient(alertdb.Config{
//	    URL: "https://alert-archive.example.org",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	packet, err := client.GetAlert(ctx, 68214)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ra := packet["diaSource"].(map[string]interface{})["ra"]
//
// Raw access, for callers that manage their own schemas:
//
//	raw, err := client.GetRawAlertBytes(ctx, 12345)
//	schemaID, payload, err := wire.SplitPayload(raw)
//	schemaJSON, err := client.GetSchemaBytes(ctx, schemaID)
//
// Using with FX:
//
//	app := fx.New(
//	    alertdb.FXModule,
//	    fx.Provide(
//	        func() alertdb.Config {
//	            return *alertdb.NewConfig() // reads ALERTDB_* env vars
//	        },
//	    ),
//	    // Your application code that uses alertdb.Client
//	)
//
// Wire Format:
//
// Archived packets are stored gzip-compressed. After decompression every
// packet is in Confluent-style wire format:
//
//	[magic_byte (1 byte)] [schema_id (4 bytes, big-endian)] [payload]
//
// The magic byte is always 0x0, followed by the schema ID, then the binary
// Avro payload. Packets that violate this framing are rejected with a
// *FormatError; the archive itself answering with a non-2xx status yields
// a *TransportError.
//
// Error Handling:
//
// All operations are fail-fast: a call either returns a fully valid result
// or an error, with no retries, partial results, or degraded modes. Callers
// apply their own timeout and retry policy around individual calls; every
// operation takes a context for cancellation.
//
// Schema Caching:
//
// The client caches compiled codecs by schema ID to minimize network calls
// to the archive. The cache is thread-safe, unbounded, and maintained
// in-memory for the lifetime of the client.
package alertdb
