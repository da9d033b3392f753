package gateway

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/goccy/go-json"
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/weegigs/visit-counter-go/visits"
)

type GatewayHandler = func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

var Live = wire.NewSet(NewGatewayHandler)

type flusher interface {
	ForceFlush(ctx context.Context) error
}

// NewGatewayHandler counts one visit per request. The request itself is not inspected. Failures
// are returned to the Lambda runtime, never rendered as a count.
//
// Lambda can freeze the environment as soon as the handler returns, so pending spans are flushed
// at the end of every invocation.
func NewGatewayHandler(service visits.CounterService, logger *zerolog.Logger, tracing trace.TracerProvider) GatewayHandler {
	flush := func(ctx context.Context) {
		if f, ok := tracing.(flusher); ok {
			if err := f.ForceFlush(ctx); err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to flush spans")
			}
		}
	}

	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		requestLogger := logger.With().Str("request_id", event.RequestContext.RequestID).Logger()
		ctx = requestLogger.WithContext(ctx)
		defer flush(ctx)

		counter, err := service.Visit(ctx)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("failed to count visit")
			return events.APIGatewayV2HTTPResponse{}, err
		}

		body, err := json.MarshalContext(ctx, counter)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}

		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       string(body),
		}, nil
	}
}
