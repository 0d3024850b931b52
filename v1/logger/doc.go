// Package logger provides structured logging for the alert archive library
// and the applications built on it.
//
// It wraps Uber's Zap logger with a simplified message/error/fields calling
// convention and optional OpenTelemetry trace correlation: when tracing is
// enabled, the *WithContext methods attach trace_id and span_id fields
// extracted from the request context.
//
// Direct usage:
//
//	import "github.com/skysurvey/alertdb/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "alert-archive-ingest",
//	})
//
//	log.Info("alert decoded", nil, map[string]interface{}{
//	    "alert_id":  81023,
//	    "schema_id": 1,
//	})
//
// The concrete *Logger satisfies the small Logger interfaces declared by the
// client packages in this library (e.g. alertdb.Logger, tracer.Logger), so a
// single instance can be attached everywhere:
//
//	client, _ := alertdb.NewClient(cfg)
//	client.WithLogger(log)
//
// With fx, include FXModule and provide a Config; the module registers a
// shutdown hook that flushes buffered entries.
package logger
