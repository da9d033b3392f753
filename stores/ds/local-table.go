package ds

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
)

// EnsureTable creates the counters table when it does not exist. Local DynamoDB can take a moment
// to accept connections, so transport failures are retried.
func EnsureTable(ctx context.Context, client *dynamodb.Client, table CountersTableName) error {
	return retry.Do(
		func() error {
			exists, err := tableExists(ctx, client, table.String())
			if err != nil {
				return err
			}

			if exists {
				return nil
			}

			return createTable(ctx, client, table.String())
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(500*time.Millisecond),
		retry.RetryIf(isTransportFailure),
		retry.LastErrorOnly(true),
	)
}

// anything that is not an API error from DynamoDB itself
func isTransportFailure(err error) bool {
	var apiErr smithy.APIError
	return !errors.As(err, &apiErr)
}

func tableExists(ctx context.Context, client *dynamodb.Client, name string) (bool, error) {
	required := &dynamodb.DescribeTableInput{TableName: aws.String(name)}
	description, err := client.DescribeTable(ctx, required)
	if err != nil {
		var errorType *types.ResourceNotFoundException
		if errors.As(err, &errorType) {
			return false, nil
		}
		return false, err
	}

	if description.Table.TableStatus != types.TableStatusActive {
		return false, waitForTable(ctx, client, name)
	}

	return true, nil
}

func createTable(ctx context.Context, client *dynamodb.Client, table string) error {
	zerolog.Ctx(ctx).Info().Str("table", table).Msg("creating counters table")

	_, err := client.CreateTable(
		ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(table),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(partitionKeyAttribute), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(partitionKeyAttribute), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
	)

	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return waitForTable(ctx, client, table)
		}
		return err
	}

	return waitForTable(ctx, client, table)
}

func waitForTable(ctx context.Context, client *dynamodb.Client, name string) error {
	required := &dynamodb.DescribeTableInput{TableName: aws.String(name)}
	return dynamodb.NewTableExistsWaiter(client).Wait(ctx, required, 2*time.Minute)
}
