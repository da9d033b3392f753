package memory

import (
	"context"

	"github.com/weegigs/visit-counter-go/support"
	"github.com/weegigs/visit-counter-go/visits"
)

// LiveStoreProvider applies the same table name check as the durable stores.
func LiveStoreProvider(cfg support.Config) visits.StoreProvider {
	return visits.Lazy(func(context.Context) (visits.CounterStore, error) {
		if _, err := cfg.RequireTableName(); err != nil {
			return nil, err
		}

		return NewCounterStore(), nil
	})
}
