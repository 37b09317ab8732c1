package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRun counts a finished run with its terminal state and duration.
	RecordRun(ctx context.Context, algorithm, state string, duration time.Duration)

	// RecordVisited records how many cells a run committed.
	RecordVisited(ctx context.Context, algorithm string, visited int)

	// RecordPath records the edge count of a found path.
	RecordPath(ctx context.Context, algorithm string, length int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	runs       metric.Int64Counter
	latency    metric.Float64Histogram
	visited    metric.Int64Histogram
	pathLength metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the shared OTel metrics instance.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics(otel.Meter("gridpath"))
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates the instruments on meter.
func newOtelMetrics(meter metric.Meter) (*otelMetrics, error) {
	runs, err := meter.Int64Counter("gridpath.search.runs",
		metric.WithDescription("Number of search runs"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("gridpath.search.latency_ms",
		metric.WithDescription("Search run latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	visited, err := meter.Int64Histogram("gridpath.search.visited",
		metric.WithDescription("Cells committed per search run"),
		metric.WithUnit("{cell}"),
	)
	if err != nil {
		return nil, err
	}

	pathLength, err := meter.Int64Histogram("gridpath.search.path_length",
		metric.WithDescription("Edge count of found paths"),
		metric.WithUnit("{edge}"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		runs:       runs,
		latency:    latency,
		visited:    visited,
		pathLength: pathLength,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// NewMetricsRecorderWithProvider returns a MetricsRecorder whose instruments
// live on mp instead of the global provider. Each call creates fresh
// instruments, so it suits short-lived providers such as a single CLI run.
func NewMetricsRecorderWithProvider(mp metric.MeterProvider) MetricsRecorder {
	m, err := newOtelMetrics(mp.Meter("gridpath"))
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRun records a finished run.
func (m *otelMetrics) RecordRun(ctx context.Context, algorithm, state string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.String("state", state),
	)
	m.runs.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordVisited records the visited cell count.
func (m *otelMetrics) RecordVisited(ctx context.Context, algorithm string, visited int) {
	m.visited.Record(ctx, int64(visited), metric.WithAttributes(attribute.String("algorithm", algorithm)))
}

// RecordPath records a found path length.
func (m *otelMetrics) RecordPath(ctx context.Context, algorithm string, length int) {
	m.pathLength.Record(ctx, int64(length), metric.WithAttributes(attribute.String("algorithm", algorithm)))
}
