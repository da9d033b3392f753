package counterhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/weegigs/visit-counter-go/visits"
)

var Live = wire.NewSet(NewHandler)

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

func NewHandler(counterService visits.CounterService, logger *zerolog.Logger) http.Handler {
	return NewHandlerWithOptions(counterService, Logger(logger))
}

func NewHandlerWithOptions(counterService visits.CounterService, options ...HandlerOption) http.Handler {
	service := &httpService{counter: counterService}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()

	r.Use(hlog.NewHandler(*service.log))
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("GET", "/count", service.countVisit())
	r.Method("POST", "/count", service.countVisit())

	return otelhttp.NewHandler(r, "count visit")
}

type httpService struct {
	log     *zerolog.Logger
	counter visits.CounterService
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("")
}

func (service *httpService) countVisit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counter, err := service.counter.Visit(r.Context())
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("failed to count visit")
			http.Error(w, "failed to count visit", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusOK)
		render.Respond(w, r, counter)
	}
}
