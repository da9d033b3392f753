package visits

import (
	"context"
)

type CounterStore interface {
	// Increment atomically adds one to the site's count and returns the updated value. Records that
	// do not exist yet start at zero.
	Increment(ctx context.Context, site SiteId) (Count, error)
	// Current reads the site's count without changing it.
	Current(ctx context.Context, site SiteId) (Count, error)
}

type StoreProvider func(ctx context.Context) (CounterStore, error)

// Fixed provides a store that has already been constructed.
func Fixed(store CounterStore) StoreProvider {
	return func(context.Context) (CounterStore, error) {
		return store, nil
	}
}
