package rds

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/weegigs/visit-counter-go/visits"
)

const countField = "count"

var _ visits.CounterStore = (*RedisCounterStore)(nil)

// RedisCounterStore keeps one hash per site, keyed "<namespace>#<site>" with a single count field.
type RedisCounterStore struct {
	client    redis.UniversalClient
	namespace string
}

func NewCounterStore(client redis.UniversalClient, namespace string) *RedisCounterStore {
	return &RedisCounterStore{client: client, namespace: namespace}
}

func (s *RedisCounterStore) key(site visits.SiteId) string {
	return strings.Join([]string{s.namespace, site.String()}, "#")
}

func (s *RedisCounterStore) Increment(ctx context.Context, site visits.SiteId) (visits.Count, error) {
	count, err := s.client.HIncrBy(ctx, s.key(site), countField, 1).Result()
	if err != nil {
		return 0, err
	}

	return visits.Count(count), nil
}

func (s *RedisCounterStore) Current(ctx context.Context, site visits.SiteId) (visits.Count, error) {
	count, err := s.client.HGet(ctx, s.key(site), countField).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return visits.Count(count), nil
}
