package alertdb

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/skysurvey/alertdb/v1/wire"
)

func newTestClient(t *testing.T, baseURL string) *ArchiveClient {
	t.Helper()

	client, err := NewClient(Config{URL: baseURL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

// gzipBytes compresses a fixture payload the way the archive stores it.
func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("failed to compress fixture: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to compress fixture: %v", err)
	}
	return buf.Bytes()
}

func TestAlertURL_Joining(t *testing.T) {
	cases := []struct {
		baseURL  string
		expected string
	}{
		{"https://alert-archive.example.org", "https://alert-archive.example.org/v1/alerts/1111"},
		{"https://alert-archive.example.org/", "https://alert-archive.example.org/v1/alerts/1111"},
		{"https://localhost/", "https://localhost/v1/alerts/1111"},
		{"localhost/", "http://localhost/v1/alerts/1111"},
		{"localhost", "http://localhost/v1/alerts/1111"},
	}

	for _, tc := range cases {
		client := newTestClient(t, tc.baseURL)

		have := client.AlertURL(1111)
		if have != tc.expected {
			t.Errorf("base %q: expected %q, got %q", tc.baseURL, tc.expected, have)
		}
	}
}

func TestSchemaURL_Joining(t *testing.T) {
	cases := []struct {
		baseURL  string
		expected string
	}{
		{"https://alert-archive.example.org", "https://alert-archive.example.org/v1/schemas/7"},
		{"https://alert-archive.example.org/", "https://alert-archive.example.org/v1/schemas/7"},
		{"localhost", "http://localhost/v1/schemas/7"},
	}

	for _, tc := range cases {
		client := newTestClient(t, tc.baseURL)

		have := client.SchemaURL(7)
		if have != tc.expected {
			t.Errorf("base %q: expected %q, got %q", tc.baseURL, tc.expected, have)
		}
	}
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(Config{})
	if err == nil {
		t.Fatal("expected error for empty URL, got nil")
	}
}

func TestGetRawAlertBytes_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such alert", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetRawAlertBytes(context.Background(), 1111)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	if te.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", te.Status)
	}
	if !IsTransportError(err) {
		t.Error("IsTransportError should report true")
	}
}

func TestGetSchemaBytes_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetSchemaBytes(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	if te.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", te.Status)
	}
}

func TestGetSchemaBytes_ReturnsBodyVerbatim(t *testing.T) {
	schemaJSON := `{"type":"record","name":"t","fields":[{"name":"alertId","type":"long"}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/schemas/1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(schemaJSON))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	body, err := client.GetSchemaBytes(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != schemaJSON {
		t.Errorf("expected schema body %q, got %q", schemaJSON, body)
	}
}

func TestGetRawAlertBytes_GzipRoundTrip(t *testing.T) {
	raw := append(wire.EncodeHeader(1), []byte("some alert payload")...)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/alerts/1111" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write(gzipBytes(t, raw))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	have, err := client.GetRawAlertBytes(context.Background(), 1111)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(have, raw) {
		t.Errorf("expected decompressed bytes %v, got %v", raw, have)
	}
}

func TestGetAlert_TooShort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(gzipBytes(t, []byte{0x00, 0x01}))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetAlert(context.Background(), 1111)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsFormatError(err) {
		t.Fatalf("expected *FormatError, got %T: %v", err, err)
	}
	if IsTransportError(err) {
		t.Error("a framing violation must not look like a transport error")
	}
}

func TestGetAlert_BadMagicByte(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(gzipBytes(t, []byte{0x01, 0x00, 0x00, 0x00, 0x09, 0x02}))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetAlert(context.Background(), 1111)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T: %v", err, err)
	}
	if !errors.Is(err, wire.ErrMalformedHeader) {
		t.Errorf("expected the wire parse failure to be preserved, got %v", err)
	}
}

func TestGetAlert_CorruptGzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("definitely not gzip"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetAlert(context.Background(), 1111)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if IsTransportError(err) || IsFormatError(err) {
		t.Errorf("gzip failure should be neither transport nor framing error, got %v", err)
	}
}
