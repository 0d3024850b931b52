package observability

import "time"

// OperationContext describes a single completed client operation.
// It is passed to observers after every operation, successful or not.
type OperationContext struct {
	// Component identifies the library package reporting the operation
	// (e.g., "alertdb")
	Component string

	// Operation is the name of the operation performed
	// (e.g., "get_alert", "fetch_schema")
	Operation string

	// Resource is the primary resource the operation acted upon
	// (e.g., the alert identifier)
	Resource string

	// SubResource optionally narrows the resource
	// (e.g., the schema identifier resolved during a decode)
	SubResource string

	// Duration is the wall-clock time the operation took
	Duration time.Duration

	// Error is the failure the operation returned, or nil on success
	Error error

	// Size is the number of payload bytes handled, or 0 when not applicable
	Size int64

	// Metadata carries optional operation-specific key/value pairs
	Metadata map[string]interface{}
}

// Observer receives operation reports from library clients.
// Implementations must be safe for concurrent use; clients may report from
// multiple goroutines. A nil observer on a client disables reporting.
type Observer interface {
	// ObserveOperation is called once per completed operation.
	// Implementations should return quickly; they run on the caller's path.
	ObserveOperation(ctx OperationContext)
}
