//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/weegigs/visit-counter-go/connectors/gateway"
)

func live(ctx context.Context) (gateway.GatewayHandler, func(), error) {
	panic(wire.Build(Live))
}
