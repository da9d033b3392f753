package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func run() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, cleanup, err := local(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return server.Run(ctx)
}

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("count server failed")
	}
}
