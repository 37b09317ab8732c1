package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/gridpath/observability"
)

// telemetry holds in-process OTel providers for one run. Nothing is
// exported; report prints what was collected.
type telemetry struct {
	reader *sdkmetric.ManualReader
	meters *sdkmetric.MeterProvider
	spans  *tracetest.InMemoryExporter
	traces *sdktrace.TracerProvider
}

func newTelemetry() *telemetry {
	reader := sdkmetric.NewManualReader()
	spans := tracetest.NewInMemoryExporter()
	return &telemetry{
		reader: reader,
		meters: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		spans:  spans,
		traces: sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans)),
	}
}

// recorders returns the metrics recorder and span manager for search.Run.
// A nil telemetry yields the global-provider versions.
func (t *telemetry) recorders() (observability.MetricsRecorder, observability.SpanManager) {
	if t == nil {
		return observability.NewMetricsRecorder(), observability.NewSpanManager()
	}
	return observability.NewMetricsRecorderWithProvider(t.meters),
		observability.NewSpanManagerWithProvider(t.traces)
}

// report writes one line per metric data point and per finished span.
func (t *telemetry) report(ctx context.Context, w io.Writer) error {
	var rm metricdata.ResourceMetrics
	if err := t.reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("collect metrics: %w", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					fmt.Fprintf(w, "metric %s{%s} %d\n", m.Name, encode(dp.Attributes), dp.Value)
				}
			case metricdata.Histogram[int64]:
				for _, dp := range data.DataPoints {
					fmt.Fprintf(w, "metric %s{%s} count=%d sum=%d\n", m.Name, encode(dp.Attributes), dp.Count, dp.Sum)
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					fmt.Fprintf(w, "metric %s{%s} count=%d sum=%.3f\n", m.Name, encode(dp.Attributes), dp.Count, dp.Sum)
				}
			}
		}
	}
	for _, s := range t.spans.GetSpans() {
		set := attribute.NewSet(s.Attributes...)
		fmt.Fprintf(w, "span %s{%s} status=%s\n", s.Name, encode(set), s.Status.Code)
	}
	return nil
}

// shutdown stops both providers.
func (t *telemetry) shutdown(ctx context.Context) error {
	return errors.Join(t.meters.Shutdown(ctx), t.traces.Shutdown(ctx))
}

func encode(set attribute.Set) string {
	return set.Encoded(attribute.DefaultEncoder())
}
