package ds

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testTableName = "test-crc-visitors"
	testRegion    = "us-east-1"
)

// TestDatabase is a DynamoDB Local container.
type TestDatabase struct {
	Endpoint  string
	Region    string
	container testcontainers.Container
}

func StartTestDatabase(ctx context.Context) (*TestDatabase, error) {
	db, err := testcontainers.GenericContainer(
		ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "amazon/dynamodb-local",
				ExposedPorts: []string{"8000/tcp"},
				WaitingFor:   wait.ForListeningPort("8000"),
			},
			Started: true,
		},
	)
	if err != nil {
		return nil, err
	}

	host, err := db.Host(ctx)
	if err != nil {
		return nil, err
	}

	port, err := db.MappedPort(ctx, "8000")
	if err != nil {
		return nil, err
	}

	return &TestDatabase{
		Endpoint:  fmt.Sprintf("http://%s:%s", host, port.Port()),
		Region:    testRegion,
		container: db,
	}, nil
}

func (db *TestDatabase) Terminate(ctx context.Context) {
	if err := db.container.Terminate(ctx); err != nil {
		panic(err)
	}
}

func (db *TestDatabase) Client(ctx context.Context) (*dynamodb.Client, error) {
	endpoint := db.Endpoint
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{
					PartitionID:   "aws",
					URL:           endpoint,
					SigningRegion: region,
				}, nil
			}
			return aws.Endpoint{}, fmt.Errorf("unknown endpoint requested")
		},
	)

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(db.Region),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID: "dummy", SecretAccessKey: "dummy", SessionToken: "dummy",
				Source: "Hard-coded credentials; values are irrelevant for local DynamoDB",
			},
		}),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(cfg), nil
}

func DynamoTestStore(ctx context.Context) (*DynamoCounterStore, func(), error) {
	db, err := StartTestDatabase(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, err := db.Client(ctx)
	if err != nil {
		db.Terminate(ctx)
		return nil, nil, err
	}

	if err := EnsureTable(ctx, client, testTableName); err != nil {
		db.Terminate(ctx)
		return nil, nil, err
	}

	store := NewCounterStore(client, testTableName)

	return store, func() { db.Terminate(ctx) }, nil
}
