package ds

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/weegigs/visit-counter-go/support"
	"github.com/weegigs/visit-counter-go/visits"
)

func rawCount(t *testing.T, store *DynamoCounterStore, site string) (string, bool) {
	out, err := store.db.GetItem(context.Background(), &dynamodb.GetItemInput{
		TableName:      aws.String(store.table),
		Key:            map[string]types.AttributeValue{"pk": &types.AttributeValueMemberS{Value: site}},
		ConsistentRead: aws.Bool(true),
	})
	require.NoError(t, err)

	if out.Item == nil {
		return "", false
	}

	count, ok := out.Item["count"].(*types.AttributeValueMemberN)
	require.True(t, ok, "count is stored as a number")

	return count.Value, true
}

func TestDynamoCounterStore(t *testing.T) {
	ctx := context.Background()
	store, tearDown, err := DynamoTestStore(ctx)
	if err != nil {
		t.Logf("failed to create test store. %+v", err)
		t.FailNow()
	}

	defer tearDown()

	t.Run("counter store validation", func(t *testing.T) {
		suite := visits.NewStoreValidationSuite(ctx, store)
		suite.Run(t)
	})

	t.Run("creates and increments the site item", func(t *testing.T) {
		service := visits.NewCounterService(visits.Fixed(store), "patrick-site", trace.NewNoopTracerProvider())

		first, err := service.Visit(ctx)
		require.NoError(t, err)
		assert.Equal(t, visits.Count(1), first.Count)

		second, err := service.Visit(ctx)
		require.NoError(t, err)
		assert.Equal(t, visits.Count(2), second.Count)

		count, found := rawCount(t, store, "patrick-site")
		assert.True(t, found)
		assert.Equal(t, "2", count)
	})

	t.Run("respects the site partition", func(t *testing.T) {
		service := visits.NewCounterService(visits.Fixed(store), "another-site", trace.NewNoopTracerProvider())

		_, err := service.Visit(ctx)
		require.NoError(t, err)
		second, err := service.Visit(ctx)
		require.NoError(t, err)

		assert.Equal(t, visits.Count(2), second.Count)

		count, _ := rawCount(t, store, "patrick-site")
		assert.Equal(t, "2", count)
	})

	t.Run("leaves no record behind when the table name is missing", func(t *testing.T) {
		cfg, err := support.ConfigFrom(map[string]string{"SITE_ID": "unconfigured-site"})
		require.NoError(t, err)

		service := visits.NewCounterService(LiveStoreProvider(cfg), cfg.Site(), trace.NewNoopTracerProvider())

		result, err := service.Visit(ctx)
		assert.True(t, visits.IsConfigurationError(err))
		assert.Equal(t, visits.Counter{}, result)

		_, found := rawCount(t, store, "unconfigured-site")
		assert.False(t, found)
	})

	t.Run("reports a missing table as a store error", func(t *testing.T) {
		missing := NewCounterStore(store.db, "no-such-table")

		_, err := missing.Increment(ctx, "patrick-site")

		var notFound *types.ResourceNotFoundException
		assert.ErrorAs(t, err, &notFound)
		assert.False(t, visits.IsConfigurationError(err))
	})
}

func TestLiveStoreProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a missing table name before connecting", func(t *testing.T) {
		provider := LiveStoreProvider(support.Config{Endpoint: "http://127.0.0.1:1"})

		store, err := provider(ctx)

		assert.Nil(t, store)
		assert.True(t, visits.IsConfigurationError(err))
	})

	t.Run("bootstraps the table and counts against it", func(t *testing.T) {
		db, err := StartTestDatabase(ctx)
		if err != nil {
			t.Logf("failed to start test database. %+v", err)
			t.FailNow()
		}
		defer db.Terminate(ctx)

		t.Setenv("AWS_ACCESS_KEY_ID", "dummy")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "dummy")

		cfg, err := support.ConfigFrom(map[string]string{
			"TABLE_NAME":         "crc-visitors",
			"STORE_ENDPOINT":     db.Endpoint,
			"STORE_REGION":       db.Region,
			"STORE_CREATE_TABLE": "true",
		})
		require.NoError(t, err)

		service := visits.NewCounterService(LiveStoreProvider(cfg), cfg.Site(), trace.NewNoopTracerProvider())

		first, err := service.Visit(ctx)
		require.NoError(t, err)
		second, err := service.Visit(ctx)
		require.NoError(t, err)

		assert.Equal(t, visits.Counter{Count: 1}, first)
		assert.Equal(t, visits.Counter{Count: 2}, second)
	})
}
