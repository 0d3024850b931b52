// Package tracer provides distributed tracing via OpenTelemetry.
//
// It wraps the OpenTelemetry TracerProvider with a small API for creating
// spans around archive operations, recording errors, and propagating W3C
// trace context across service boundaries. Export over OTLP HTTP is
// optional and configured through the standard OTEL_EXPORTER_OTLP_*
// environment variables.
//
// Typical usage around the archive client:
//
//	tr := tracer.NewClient(tracer.Config{
//	    ServiceName:  "alert-archive-client",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}, log)
//
//	ctx, span := tr.StartSpan(ctx, "get-alert")
//	defer span.End()
//
//	record, err := client.GetAlert(ctx, alertID)
//	if err != nil {
//	    tr.RecordErrorOnSpan(span, err)
//	    return err
//	}
//	tr.SetAttributes(span, map[string]interface{}{"alert.id": alertID})
//
// With fx, include FXModule; the module registers a shutdown hook that
// flushes pending spans.
package tracer
