package support

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/weegigs/visit-counter-go/visits"
)

func (cfg Config) TraceSettings() visits.TraceSettings {
	return visits.TraceSettings{
		Exporter:         cfg.TraceExporter,
		HoneycombTeam:    cfg.HoneycombTeam,
		HoneycombDataset: cfg.HoneycombDataset,
		JaegerEndpoint:   cfg.JaegerEndpoint,
	}
}

// TracerProvider installs a global tracer provider so the aws and http instrumentation report to
// the same exporter. Without an exporter, tracing is a no-op.
func TracerProvider(ctx context.Context, cfg Config) (trace.TracerProvider, func(), error) {
	exporter, err := visits.SpanExporter(ctx, cfg.TraceSettings())
	if err != nil {
		return nil, nil, err
	}

	if exporter == nil {
		return trace.NewNoopTracerProvider(), func() {}, nil
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)

	return provider, func() {
		_ = provider.Shutdown(context.Background())
	}, nil
}
