package alertdb

import (
	"time"

	"github.com/skysurvey/alertdb/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
// This is used internally to track fetch and decode operations for metrics and tracing.
func (c *ArchiveClient) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64) {
	if c.observer != nil {
		c.observer.ObserveOperation(observability.OperationContext{
			Component:   "alertdb",
			Operation:   operation,
			Resource:    resource,
			SubResource: subResource,
			Duration:    duration,
			Error:       err,
			Size:        size,
			Metadata:    nil,
		})
	}
}
