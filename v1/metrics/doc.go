// Package metrics provides Prometheus metrics collection and exposure for
// applications built on the alert archive client.
//
// Each Metrics instance owns an isolated registry and an HTTP server that
// serves the /metrics endpoint. Built-in vectors cover the archive client's
// operations: fetch counts and durations per operation, decoded payload
// sizes, and schema cache results. Additional metrics can be created through
// the CreateCounter / CreateHistogram / CreateGauge factories.
//
// To wire the archive client into these vectors, attach the observer bridge:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "alert-archive-client",
//	    EnableDefaultCollectors: true,
//	})
//
//	client, _ := alertdb.NewClient(cfg)
//	client.WithObserver(metrics.NewObserver(m))
//
// With fx, include FXModule and provide a Config; the module starts the
// metrics server on application start and shuts it down gracefully on stop.
package metrics
