package ds

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"

	"github.com/weegigs/visit-counter-go/visits"
)

const (
	partitionKeyAttribute = "pk"
	countAttribute        = "count"
)

type CountersTableName string

func (name CountersTableName) String() string {
	return string(name)
}

type DynamoCounterStore struct {
	db    *dynamodb.Client
	table string
}

func NewCounterStore(db *dynamodb.Client, table CountersTableName) *DynamoCounterStore {
	return &DynamoCounterStore{db: db, table: string(table)}
}

type counterKey struct {
	PartitionKey string `dynamodbav:"pk"`
}

type counterRecord struct {
	PartitionKey string       `dynamodbav:"pk,omitempty"`
	Count        visits.Count `dynamodbav:"count"`
}

func keyFor(site visits.SiteId) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(counterKey{PartitionKey: site.String()})
}

// Increment issues a single UpdateItem with an ADD expression. DynamoDB applies ADD atomically and
// treats a missing attribute as zero, so the item is created by the first visit.
func (s *DynamoCounterStore) Increment(ctx context.Context, site visits.SiteId) (visits.Count, error) {
	key, err := keyFor(site)
	if err != nil {
		return 0, err
	}

	update := expression.Add(expression.Name(countAttribute), expression.Value(1))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return 0, err
	}

	out, err := s.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	var record counterRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &record); err != nil {
		return 0, errors.Wrap(err, "failed to unmarshal updated count")
	}

	return record.Count, nil
}

func (s *DynamoCounterStore) Current(ctx context.Context, site visits.SiteId) (visits.Count, error) {
	key, err := keyFor(site)
	if err != nil {
		return 0, err
	}

	projection, err := expression.NewBuilder().WithProjection(expression.NamesList(expression.Name(countAttribute))).Build()
	if err != nil {
		return 0, err
	}

	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(s.table),
		Key:                      key,
		ConsistentRead:           aws.Bool(true),
		ProjectionExpression:     projection.Projection(),
		ExpressionAttributeNames: projection.Names(),
	})
	if err != nil {
		return 0, err
	}

	if out.Item == nil {
		return 0, nil
	}

	var record counterRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return 0, errors.Wrap(err, "failed to unmarshal count")
	}

	return record.Count, nil
}
