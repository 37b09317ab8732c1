package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("gridpath")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartSearchSpan starts a span covering one search run.
	StartSearchSpan(ctx context.Context, algorithm, runID string) (context.Context, trace.Span)

	// EndSearchSpan annotates the span with the outcome and ends it.
	// A non-nil err is recorded and marks the span as failed.
	EndSearchSpan(span trace.Span, outcome Outcome, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// Outcome summarizes a finished run for span attributes.
type Outcome struct {
	State      string
	Visited    int
	PathLength int
}

// otelSpanManager implements SpanManager using OpenTelemetry.
// A nil tracer means the package tracer on the global provider.
type otelSpanManager struct {
	tracer trace.Tracer
}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// NewSpanManagerWithProvider returns a SpanManager that starts spans on tp
// instead of the global provider.
func NewSpanManagerWithProvider(tp trace.TracerProvider) SpanManager {
	return &otelSpanManager{tracer: tp.Tracer("gridpath")}
}

// StartSearchSpan starts a span for a search run.
func (m *otelSpanManager) StartSearchSpan(ctx context.Context, algorithm, runID string) (context.Context, trace.Span) {
	t := m.tracer
	if t == nil {
		t = tracer
	}
	return t.Start(ctx, "gridpath.search",
		trace.WithAttributes(
			attribute.String("search.algorithm", algorithm),
			attribute.String("run.id", runID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSearchSpan completes a search span.
func (m *otelSpanManager) EndSearchSpan(span trace.Span, outcome Outcome, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return
	}
	span.SetAttributes(
		attribute.String("search.state", outcome.State),
		attribute.Int("search.visited", outcome.Visited),
		attribute.Int("search.path_length", outcome.PathLength),
	)
	span.SetStatus(codes.Ok, "")
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
