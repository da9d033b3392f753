package visits

import (
	"context"

	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
)

const (
	ConsoleTracing   = "console"
	HoneycombTracing = "honeycomb"
	JaegerTracing    = "jaeger"
)

const (
	honeycombEndpoint     = "api.honeycomb.io:443"
	DefaultJaegerEndpoint = "http://localhost:14268/api/traces"
)

type TraceSettings struct {
	Exporter         string
	HoneycombTeam    string
	HoneycombDataset string
	JaegerEndpoint   string
}

// SpanExporter returns nil when no exporter is named.
func SpanExporter(ctx context.Context, settings TraceSettings) (trace.SpanExporter, error) {
	switch settings.Exporter {
	case "":
		return nil, nil

	case ConsoleTracing:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())

	case HoneycombTracing:
		if settings.HoneycombTeam == "" {
			return nil, MissingSetting("HONEYCOMB_TEAM")
		}

		client := otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(honeycombEndpoint),
			otlptracegrpc.WithHeaders(map[string]string{
				"x-honeycomb-team":    settings.HoneycombTeam,
				"x-honeycomb-dataset": settings.HoneycombDataset,
			}),
			otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")),
		)
		return otlptrace.New(ctx, client)

	case JaegerTracing:
		endpoint := settings.JaegerEndpoint
		if endpoint == "" {
			endpoint = DefaultJaegerEndpoint
		}
		return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))

	default:
		return nil, InvalidSetting("TRACE_EXPORTER", "unknown exporter "+settings.Exporter)
	}
}
