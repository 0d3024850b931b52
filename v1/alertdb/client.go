package alertdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/linkedin/goavro/v2"
	"golang.org/x/sync/errgroup"

	"github.com/skysurvey/alertdb/v1/observability"
	"github.com/skysurvey/alertdb/v1/wire"
)

// ArchiveClient is the default implementation of Client that talks to an
// alert archive service over HTTP.
//
// The base URL is normalized once at construction and never mutated. The
// schema cache is owned by the client and populated lazily through
// ResolveSchema; see schemaCache for the concurrency discipline.
type ArchiveClient struct {
	baseURL    *url.URL
	httpClient *http.Client

	schemas *schemaCache

	batchConcurrency int

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// logger is optional; a nil logger disables logging
	logger Logger
}

// NewClient creates a new alert archive client.
// Returns the concrete *ArchiveClient type.
//
// If the configured URL has no scheme, "http://" is assumed. No network
// activity happens here; the archive is first contacted by the fetch
// operations.
func NewClient(cfg Config) (*ArchiveClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("alertdb: archive URL is required")
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = DefaultBatchConcurrency
	}

	raw := cfg.URL
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("alertdb: invalid archive URL %q: %w", cfg.URL, err)
	}

	return &ArchiveClient{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		schemas:          newSchemaCache(),
		batchConcurrency: cfg.BatchConcurrency,
	}, nil
}

// WithObserver attaches an observer that receives a report for every
// operation. Returns the client for chaining.
func (c *ArchiveClient) WithObserver(observer observability.Observer) *ArchiveClient {
	c.observer = observer
	return c
}

// WithLogger attaches a logger used for debug-level operational logging.
// Returns the client for chaining.
func (c *ArchiveClient) WithLogger(logger Logger) *ArchiveClient {
	c.logger = logger
	return c
}

// AlertURL returns the absolute URL for an alert packet resource.
// The join follows standard relative-reference resolution: the fixed
// absolute path replaces the base path entirely, so a trailing slash on
// the base makes no difference.
func (c *ArchiveClient) AlertURL(alertID uint64) string {
	ref := &url.URL{Path: fmt.Sprintf("/v1/alerts/%d", alertID)}
	return c.baseURL.ResolveReference(ref).String()
}

// SchemaURL returns the absolute URL for a schema document resource.
func (c *ArchiveClient) SchemaURL(schemaID uint32) string {
	ref := &url.URL{Path: fmt.Sprintf("/v1/schemas/%d", schemaID)}
	return c.baseURL.ResolveReference(ref).String()
}

// get performs a blocking GET and enforces the status contract: any
// non-2xx response is converted into a *TransportError carrying the status
// and (truncated) body. The caller owns the response body on success.
func (c *ArchiveClient) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("alertdb: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alertdb: request to %s failed: %w", rawURL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		return nil, &TransportError{
			Status: resp.StatusCode,
			URL:    rawURL,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	return resp, nil
}

// GetRawAlertBytes retrieves the verbatim raw bytes of an alert packet, as
// sent out over the alert stream.
//
// These bytes are binary-encoded Avro, prefixed with a 5-byte wire framing
// header. The archive stores packets gzip-compressed; the compression is
// stripped here and the decompressed bytes are returned without any
// framing validation.
func (c *ArchiveClient) GetRawAlertBytes(ctx context.Context, alertID uint64) ([]byte, error) {
	start := time.Now()

	raw, err := c.fetchAlertBytes(ctx, alertID)
	c.observeOperation("fetch_alert", fmt.Sprintf("%d", alertID), "", time.Since(start), err, int64(len(raw)))
	return raw, err
}

func (c *ArchiveClient) fetchAlertBytes(ctx context.Context, alertID uint64) ([]byte, error) {
	resp, err := c.get(ctx, c.AlertURL(alertID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("alertdb: failed to decompress alert %d: %w", alertID, err)
	}
	defer zr.Close()

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("alertdb: failed to decompress alert %d: %w", alertID, err)
	}

	return decompressed, nil
}

// GetSchemaBytes retrieves the raw bytes of a JSON document describing an
// alert packet schema.
//
// The schemaID parameter is the unique ID of the alert packet schema. This
// is the ID that appears in the wire framing header of raw alert packets.
// Schema bodies are plain JSON and are returned unmodified.
func (c *ArchiveClient) GetSchemaBytes(ctx context.Context, schemaID uint32) ([]byte, error) {
	start := time.Now()

	body, err := c.fetchSchemaBytes(ctx, schemaID)
	c.observeOperation("fetch_schema", fmt.Sprintf("%d", schemaID), "", time.Since(start), err, int64(len(body)))
	return body, err
}

func (c *ArchiveClient) fetchSchemaBytes(ctx context.Context, schemaID uint32) ([]byte, error) {
	resp, err := c.get(ctx, c.SchemaURL(schemaID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("alertdb: failed to read schema %d: %w", schemaID, err)
	}

	return body, nil
}

// ResolveSchema returns the compiled Avro codec for a schema identifier.
//
// On a cache hit no network call is made. On a miss the schema document is
// fetched, compiled, and inserted into the cache keyed by identifier.
// This is the sole cache-population path: a given identifier is fetched
// and parsed at most once per client lifetime.
func (c *ArchiveClient) ResolveSchema(ctx context.Context, schemaID uint32) (*goavro.Codec, error) {
	if codec, ok := c.schemas.get(schemaID); ok {
		return codec, nil
	}

	if c.logger != nil {
		c.logger.Debug("schema cache miss, fetching from archive", nil, map[string]interface{}{
			"schema_id": schemaID,
		})
	}

	schemaBytes, err := c.GetSchemaBytes(ctx, schemaID)
	if err != nil {
		return nil, err
	}

	codec, err := goavro.NewCodec(string(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("alertdb: failed to parse schema %d: %w", schemaID, err)
	}

	c.schemas.put(schemaID, codec)

	return codec, nil
}

// GetAlert retrieves and deserializes an archived alert packet by ID.
//
// This downloads a raw alert packet with GetRawAlertBytes, validates the
// wire framing header, resolves the packet's schema through the cache, and
// decodes the payload against it. The decode must consume the payload
// exactly; trailing bytes are treated as a decode failure.
//
// Errors keep the three-way split documented on the package: transport
// failures carry a *TransportError, framing violations a *FormatError, and
// schema or payload decode failures are propagated wrapped.
func (c *ArchiveClient) GetAlert(ctx context.Context, alertID uint64) (map[string]interface{}, error) {
	raw, err := c.GetRawAlertBytes(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if len(raw) < wire.HeaderLen {
		return nil, &FormatError{
			Reason: fmt.Sprintf("too short, expected at least %d bytes, got %d", wire.HeaderLen, len(raw)),
		}
	}

	schemaID, payload, err := wire.SplitPayload(raw)
	if err != nil {
		return nil, &FormatError{Reason: "bad framing header, might be corrupted", cause: err}
	}

	codec, err := c.ResolveSchema(ctx, schemaID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	record, err := decodeRecord(codec, payload)
	c.observeOperation("decode_alert", fmt.Sprintf("%d", alertID), fmt.Sprintf("%d", schemaID), time.Since(start), err, int64(len(payload)))
	if err != nil {
		return nil, fmt.Errorf("alertdb: failed to decode alert %d with schema %d: %w", alertID, schemaID, err)
	}

	return record, nil
}

// GetAlerts retrieves and deserializes multiple alert packets.
//
// Requests are issued with bounded concurrency (Config.BatchConcurrency)
// and results are returned in input order. The first error cancels the
// remaining fetches and is returned; no partial results are produced.
func (c *ArchiveClient) GetAlerts(ctx context.Context, alertIDs []uint64) ([]map[string]interface{}, error) {
	records := make([]map[string]interface{}, len(alertIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.batchConcurrency)

	for i, alertID := range alertIDs {
		g.Go(func() error {
			record, err := c.GetAlert(ctx, alertID)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// decodeRecord decodes a schemaless binary Avro payload into a record map.
// The payload must encode exactly one record: leftover bytes after the
// decode mean the payload and schema disagree.
func decodeRecord(codec *goavro.Codec, payload []byte) (map[string]interface{}, error) {
	native, remaining, err := codec.NativeFromBinary(payload)
	if err != nil {
		return nil, err
	}

	if len(remaining) != 0 {
		return nil, fmt.Errorf("payload has %d trailing bytes after decode", len(remaining))
	}

	record, ok := native.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("payload decoded to %T, expected a record", native)
	}

	return record, nil
}
