package main

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/visit-counter-go/visits"
)

func TestLive(t *testing.T) {
	ctx := context.Background()

	t.Run("counts with the configured backend", func(t *testing.T) {
		t.Setenv("TABLE_NAME", "test-crc-visitors")
		t.Setenv("SITE_ID", "patrick-site")
		t.Setenv("STORE_BACKEND", "memory")

		handler, cleanup, err := live(ctx)
		require.NoError(t, err)
		defer cleanup()

		first, err := handler(ctx, events.APIGatewayV2HTTPRequest{})
		require.NoError(t, err)
		second, err := handler(ctx, events.APIGatewayV2HTTPRequest{})
		require.NoError(t, err)

		assert.Equal(t, 200, first.StatusCode)
		assert.JSONEq(t, `{"count": 1}`, first.Body)
		assert.JSONEq(t, `{"count": 2}`, second.Body)
	})

	t.Run("faults each invocation while the table name is missing", func(t *testing.T) {
		t.Setenv("TABLE_NAME", "")
		t.Setenv("STORE_BACKEND", "memory")

		handler, cleanup, err := live(ctx)
		require.NoError(t, err)
		defer cleanup()

		for i := 0; i < 2; i++ {
			response, err := handler(ctx, events.APIGatewayV2HTTPRequest{})
			assert.True(t, visits.IsConfigurationError(err))
			assert.Empty(t, response.Body)
		}
	})
}
