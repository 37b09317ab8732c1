package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest swaps in an in-memory tracer provider.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("gridpath")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		tracer = otel.Tracer("gridpath")
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}
	return exporter, cleanup
}

// attrMap flattens span attributes for lookups.
func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestSearchSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()
	sm := NewSpanManager()

	t.Run("success carries outcome", func(t *testing.T) {
		exporter.Reset()
		ctx, span := sm.StartSearchSpan(context.Background(), "a_star", "run-1")
		sm.AddSpanEvent(ctx, "board.ready", attribute.Int("rows", 5))
		sm.EndSearchSpan(span, Outcome{State: "found", Visited: 9, PathLength: 4}, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		s := spans[0]
		assert.Equal(t, "gridpath.search", s.Name)
		assert.Equal(t, codes.Ok, s.Status.Code)

		attrs := attrMap(s.Attributes)
		assert.Equal(t, "a_star", attrs["search.algorithm"].AsString())
		assert.Equal(t, "run-1", attrs["run.id"].AsString())
		assert.Equal(t, "found", attrs["search.state"].AsString())
		assert.Equal(t, int64(9), attrs["search.visited"].AsInt64())
		assert.Equal(t, int64(4), attrs["search.path_length"].AsInt64())

		require.Len(t, s.Events, 1)
		assert.Equal(t, "board.ready", s.Events[0].Name)
	})

	t.Run("error is recorded", func(t *testing.T) {
		exporter.Reset()
		_, span := sm.StartSearchSpan(context.Background(), "bfs", "run-2")
		sm.EndSearchSpan(span, Outcome{}, errors.New("no start"))

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		assert.Equal(t, "no start", spans[0].Status.Description)
		require.NotEmpty(t, spans[0].Events)
		assert.Equal(t, "exception", spans[0].Events[0].Name)
	})

	t.Run("nil span is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() { sm.EndSearchSpan(nil, Outcome{}, nil) })
	})
}

func TestNewSpanManagerWithProvider(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	sm := NewSpanManagerWithProvider(tp)
	_, span := sm.StartSearchSpan(context.Background(), "dijkstra", "run-3")
	sm.EndSearchSpan(span, Outcome{State: "exhausted", Visited: 2}, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "span goes to the given provider, not the global one")
	assert.Equal(t, "gridpath.search", spans[0].Name)
	assert.Equal(t, "exhausted", attrMap(spans[0].Attributes)["search.state"].AsString())
}
