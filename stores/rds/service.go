package rds

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/weegigs/visit-counter-go/support"
	"github.com/weegigs/visit-counter-go/visits"
)

const DefaultURL = "redis://localhost:6379/0"

func LiveStoreProvider(cfg support.Config) visits.StoreProvider {
	return visits.Lazy(func(ctx context.Context) (visits.CounterStore, error) {
		namespace, err := cfg.RequireTableName()
		if err != nil {
			return nil, err
		}

		client, err := Client(cfg)
		if err != nil {
			return nil, err
		}

		return NewCounterStore(client, namespace), nil
	})
}

func Client(cfg support.Config) (*redis.Client, error) {
	url := cfg.Endpoint
	if url == "" {
		url = DefaultURL
	}

	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, visits.InvalidSetting(support.EndpointSetting, err.Error())
	}

	return redis.NewClient(options), nil
}
