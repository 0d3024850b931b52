package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// StartSpan creates a new span with the given name and returns an updated
// context containing the span, along with the span itself.
//
// The created span becomes a child of any span that exists in the provided
// context. If no span exists in the context, a new root span is created.
//
// Example:
//
//	func fetchAlert(ctx context.Context, alertID uint64) (map[string]interface{}, error) {
//	    ctx, span := tracer.StartSpan(ctx, "get-alert")
//	    defer span.End()
//
//	    record, err := client.GetAlert(ctx, alertID)
//	    if err != nil {
//	        tracer.RecordErrorOnSpan(span, err)
//	        return nil, err
//	    }
//	    return record, nil
//	}
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	tracer := t.tracer.Tracer("")
	ctx, span := tracer.Start(ctx, name)
	return ctx, span
}

// RecordErrorOnSpan records an error on a span and sets its status to error.
// This marks the span as a failed operation for error tracing and monitoring.
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetAttributes adds one or more attributes to a span with support for
// different data types. Values can be strings, ints, int64s, float64s, or
// booleans; other types are converted to strings.
//
// Example:
//
//	tracer.SetAttributes(span, map[string]interface{}{
//	    "alert.id":  alertID,
//	    "schema.id": schemaID,
//	})
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case uint32:
			attributes = append(attributes, attribute.Int64(k, int64(val)))
		case uint64:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			// For unsupported types, convert to string
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	span.SetAttributes(attributes...)
}

// GetCarrier extracts the current trace context from a context object and
// returns it as a map of W3C Trace Context headers that can be transmitted
// across service boundaries.
func (t *Tracer) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext extracts trace information from a carrier map and
// injects it into a context. This is the complement to GetCarrier, used when
// receiving requests or messages that include trace headers.
func (t *Tracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
