package visits

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "visit-counter"

type CounterService interface {
	// Visit counts one visit against the configured site and returns the new total.
	Visit(ctx context.Context) (Counter, error)
}

func NewCounterService(provider StoreProvider, site SiteId, tracing trace.TracerProvider) CounterService {
	return &counterService{
		provider: provider,
		site:     site,
		tracer:   tracing.Tracer(tracerName),
	}
}

type counterService struct {
	provider StoreProvider
	site     SiteId
	tracer   trace.Tracer
}

func (s *counterService) Visit(ctx context.Context) (Counter, error) {
	ctx, span := s.tracer.Start(ctx, "count visit", trace.WithAttributes(attribute.String("site", s.site.String())))
	defer span.End()

	store, err := s.provider(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "counter store unavailable")
		return Counter{}, err
	}

	count, err := store.Increment(ctx, s.site)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "increment failed")
		return Counter{}, err
	}

	span.SetAttributes(attribute.Int64("count", int64(count)))
	zerolog.Ctx(ctx).Debug().Str("site", s.site.String()).Int64("count", int64(count)).Msg("visit counted")

	return Counter{Count: count}, nil
}
