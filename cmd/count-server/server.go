package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/weegigs/visit-counter-go/support"
)

const shutdownGrace = 10 * time.Second

type Server struct {
	http *http.Server
	log  *zerolog.Logger
}

func NewServer(cfg support.Config, handler http.Handler, logger *zerolog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              cfg.ListenAddress,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: logger,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	failed := make(chan error, 1)
	go func() {
		s.log.Info().Str("address", s.http.Addr).Msg("listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
		close(failed)
	}()

	select {
	case err := <-failed:
		return err
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	s.log.Info().Msg("shutting down")
	return s.http.Shutdown(shutdown)
}
