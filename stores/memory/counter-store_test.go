package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weegigs/visit-counter-go/support"
	"github.com/weegigs/visit-counter-go/visits"
)

func TestMemoryCounterStore(t *testing.T) {
	ctx := context.Background()

	t.Run("counter store validation", func(t *testing.T) {
		suite := visits.NewStoreValidationSuite(ctx, NewCounterStore())
		suite.Run(t)
	})

	t.Run("does not count cancelled visits", func(t *testing.T) {
		store := NewCounterStore()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Increment(cancelled, "patrick-site")
		assert.ErrorIs(t, err, context.Canceled)

		count, err := store.Current(ctx, "patrick-site")
		assert.Nil(t, err)
		assert.Equal(t, visits.Count(0), count)
	})
}

func TestLiveStoreProvider(t *testing.T) {
	ctx := context.Background()

	_, err := LiveStoreProvider(support.Config{})(ctx)
	assert.True(t, visits.IsConfigurationError(err))

	provider := LiveStoreProvider(support.Config{TableName: "crc-visitors"})
	first, err := provider(ctx)
	assert.Nil(t, err)
	second, err := provider(ctx)
	assert.Nil(t, err)
	assert.Same(t, first, second)
}
