package alertdb

import (
	"errors"
	"fmt"
)

// TransportError reports a non-success HTTP status from the archive.
// It is returned by the fetch operations whenever the archive answers with
// anything outside the 2xx range; the response status is preserved so
// callers can apply their own retry or backoff policy.
type TransportError struct {
	// Status is the HTTP status code the archive returned.
	Status int

	// URL is the resource that was requested.
	URL string

	// Body is the response body, useful for surfacing archive error messages.
	Body string
}

func (e *TransportError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("alertdb: archive returned status %d for %s: %s", e.Status, e.URL, e.Body)
	}
	return fmt.Sprintf("alertdb: archive returned status %d for %s", e.Status, e.URL)
}

// FormatError reports alert bytes that violate the wire framing format.
// The Reason distinguishes a truncated packet ("too short") from a wrong
// magic byte, so callers can tell malformed data apart from an unsupported
// encoding version.
type FormatError struct {
	// Reason is a human-readable description of the violation.
	Reason string

	cause error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("alertdb: corrupted alert data is not in confluent wire format: %s", e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.cause
}

// IsTransportError checks if the error is a non-success HTTP response.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsFormatError checks if the error is a wire framing violation.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
