package main

import (
	"github.com/google/wire"

	"github.com/weegigs/visit-counter-go/connectors/counterhttp"
	"github.com/weegigs/visit-counter-go/stores"
	"github.com/weegigs/visit-counter-go/support"
	"github.com/weegigs/visit-counter-go/visits"
)

var Local = wire.NewSet(
	support.LoadConfig,
	support.NewLogger,
	support.TracerProvider,
	support.SiteIdOf,
	stores.Live,
	visits.NewCounterService,
	counterhttp.Live,
	NewServer,
)
