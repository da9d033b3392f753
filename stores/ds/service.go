package ds

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"

	"github.com/weegigs/visit-counter-go/support"
	"github.com/weegigs/visit-counter-go/visits"
)

func LiveCountersTableName(cfg support.Config) (CountersTableName, error) {
	table, err := cfg.RequireTableName()
	if err != nil {
		return "", err
	}

	return CountersTableName(table), nil
}

// LiveStoreProvider checks the table name before any AWS configuration is loaded, then builds the
// client on first use and keeps it for later invocations.
func LiveStoreProvider(cfg support.Config) visits.StoreProvider {
	return visits.Lazy(func(ctx context.Context) (visits.CounterStore, error) {
		table, err := LiveCountersTableName(cfg)
		if err != nil {
			return nil, err
		}

		awsConfig, err := support.AWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}

		client := Client(awsConfig)
		if cfg.CreateTable {
			if err := EnsureTable(ctx, client, table); err != nil {
				return nil, err
			}
		}

		return NewCounterStore(client, table), nil
	})
}

func Client(cfg aws.Config) *dynamodb.Client {
	otelaws.AppendMiddlewares(&cfg.APIOptions)
	return dynamodb.NewFromConfig(cfg)
}
