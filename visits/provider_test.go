package visits

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazy(t *testing.T) {
	ctx := context.Background()

	t.Run("constructs the store once", func(t *testing.T) {
		constructed := 0
		provider := Lazy(func(context.Context) (CounterStore, error) {
			constructed++
			return newRecordingStore(), nil
		})

		first, err := provider(ctx)
		assert.Nil(t, err)
		second, err := provider(ctx)
		assert.Nil(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, constructed)
	})

	t.Run("retries after a failed construction", func(t *testing.T) {
		attempts := 0
		provider := Lazy(func(context.Context) (CounterStore, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("no credentials")
			}
			return newRecordingStore(), nil
		})

		_, err := provider(ctx)
		assert.NotNil(t, err)

		store, err := provider(ctx)
		assert.Nil(t, err)
		assert.NotNil(t, store)
		assert.Equal(t, 2, attempts)
	})
}
