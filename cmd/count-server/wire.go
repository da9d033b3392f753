//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
)

func local(ctx context.Context) (*Server, func(), error) {
	panic(wire.Build(Local))
}
