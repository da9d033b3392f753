// Package stores selects the counter store backend named by STORE_BACKEND.
package stores

import (
	"github.com/google/wire"

	"github.com/weegigs/visit-counter-go/stores/ds"
	"github.com/weegigs/visit-counter-go/stores/memory"
	"github.com/weegigs/visit-counter-go/stores/rds"
	"github.com/weegigs/visit-counter-go/support"
	"github.com/weegigs/visit-counter-go/visits"
)

var Live = wire.NewSet(
	LiveProvider,
)

// LiveProvider never fails itself. An unknown backend is reported by the returned provider, on
// each invocation, before any store is touched.
func LiveProvider(cfg support.Config) visits.StoreProvider {
	switch cfg.Backend {
	case support.BackendDynamoDB:
		return ds.LiveStoreProvider(cfg)
	case support.BackendRedis:
		return rds.LiveStoreProvider(cfg)
	case support.BackendMemory:
		return memory.LiveStoreProvider(cfg)
	default:
		return visits.Unavailable(visits.InvalidSetting(support.BackendSetting, "unknown backend "+cfg.Backend))
	}
}
