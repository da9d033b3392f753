package visits

import (
	"context"
	"sync"
)

// Lazy defers construction of a store until first use and keeps the result for the life of the
// process. Failed constructions are not kept, the next call tries again.
func Lazy(create StoreProvider) StoreProvider {
	var mu sync.Mutex
	var store CounterStore

	return func(ctx context.Context) (CounterStore, error) {
		mu.Lock()
		defer mu.Unlock()

		if store != nil {
			return store, nil
		}

		created, err := create(ctx)
		if err != nil {
			return nil, err
		}

		store = created
		return store, nil
	}
}

// Unavailable provides an error in place of a store.
func Unavailable(err error) StoreProvider {
	return func(context.Context) (CounterStore, error) {
		return nil, err
	}
}
