package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/weegigs/visit-counter-go/support"
)

func TestServerStopsWhenCancelled(t *testing.T) {
	logger := zerolog.Nop()
	server := NewServer(support.Config{ListenAddress: "127.0.0.1:0"}, http.NotFoundHandler(), &logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestLocalAssemblesFromEnvironment(t *testing.T) {
	t.Setenv("TABLE_NAME", "crc-visitors")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("LISTEN_ADDRESS", "127.0.0.1:0")

	server, cleanup, err := local(context.Background())
	if !assert.NoError(t, err) {
		return
	}
	defer cleanup()

	assert.Equal(t, "127.0.0.1:0", server.http.Addr)
}
