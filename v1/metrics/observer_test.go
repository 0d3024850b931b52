package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/skysurvey/alertdb/v1/observability"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{
		Address:                 ":0",
		ServiceName:             "test",
		EnableDefaultCollectors: false,
	})
}

func TestObserveOperation_Success(t *testing.T) {
	m := newTestMetrics()
	observer := NewObserver(m)

	observer.ObserveOperation(observability.OperationContext{
		Component: "alertdb",
		Operation: "fetch_alert",
		Resource:  "81023",
		Duration:  25 * time.Millisecond,
		Size:      2048,
	})

	count := testutil.ToFloat64(m.fetchesTotal.WithLabelValues("fetch_alert", "success"))
	if count != 1 {
		t.Errorf("expected 1 success fetch, got %v", count)
	}

	errCount := testutil.ToFloat64(m.fetchesTotal.WithLabelValues("fetch_alert", "error"))
	if errCount != 0 {
		t.Errorf("expected 0 error fetches, got %v", errCount)
	}
}

func TestObserveOperation_Error(t *testing.T) {
	m := newTestMetrics()
	observer := NewObserver(m)

	observer.ObserveOperation(observability.OperationContext{
		Component: "alertdb",
		Operation: "fetch_schema",
		Resource:  "9",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("status 404"),
	})

	count := testutil.ToFloat64(m.fetchesTotal.WithLabelValues("fetch_schema", "error"))
	if count != 1 {
		t.Errorf("expected 1 error fetch, got %v", count)
	}
}

func TestIncrementSchemaCache(t *testing.T) {
	m := newTestMetrics()

	m.IncrementSchemaCache("hit")
	m.IncrementSchemaCache("hit")
	m.IncrementSchemaCache("miss")

	hits := testutil.ToFloat64(m.schemaCacheTotal.WithLabelValues("hit"))
	if hits != 2 {
		t.Errorf("expected 2 hits, got %v", hits)
	}
	misses := testutil.ToFloat64(m.schemaCacheTotal.WithLabelValues("miss"))
	if misses != 1 {
		t.Errorf("expected 1 miss, got %v", misses)
	}
}

func TestCreateCounter_Registers(t *testing.T) {
	m := newTestMetrics()

	counter := m.CreateCounter("custom_total", "a custom counter", []string{"kind"})
	counter.WithLabelValues("x").Inc()

	if got := testutil.ToFloat64(counter.WithLabelValues("x")); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}
