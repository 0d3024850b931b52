// Package observability defines the observer contract shared by the client
// packages in this library.
//
// Clients report every completed operation to an optional Observer via an
// OperationContext snapshot. Observers bridge those reports into whatever
// backend the application uses; see the metrics package for a Prometheus
// implementation.
//
// Usage:
//
//	client, _ := alertdb.NewClient(cfg)
//	client.WithObserver(myObserver)
//
// Observers run synchronously on the calling goroutine, so implementations
// should be cheap and must be safe for concurrent use.
package observability
