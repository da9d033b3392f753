package visits

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jaswdr/faker"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

var entropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
var entropyLock sync.Mutex

func NewStoreValidationSuite(ctx context.Context, store CounterStore) *StoreValidationSuite {
	return &StoreValidationSuite{
		store: store,
		ctx:   ctx,
		faker: faker.New(),
	}
}

// StoreValidationSuite checks the behaviour every CounterStore implementation has to share.
type StoreValidationSuite struct {
	store CounterStore
	ctx   context.Context
	faker faker.Faker
}

func (s *StoreValidationSuite) Run(t *testing.T) {
	t.Run("reads zero for an unknown site", s.ReadsZeroForUnknownSite)
	t.Run("creates the record on first increment", s.CreatesOnFirstIncrement)
	t.Run("increments sequentially", s.IncrementsSequentially)
	t.Run("isolates sites", s.IsolatesSites)
	t.Run("returns distinct values to concurrent callers", s.ConcurrentIncrements)
}

func (s *StoreValidationSuite) MakeTestSiteId() SiteId {
	entropyLock.Lock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	entropyLock.Unlock()

	return SiteId(strings.Join([]string{s.faker.Internet().Domain(), id}, "#"))
}

func (s *StoreValidationSuite) ReadsZeroForUnknownSite(t *testing.T) {
	count, err := s.store.Current(s.ctx, s.MakeTestSiteId())
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, Count(0), count)
}

func (s *StoreValidationSuite) CreatesOnFirstIncrement(t *testing.T) {
	site := s.MakeTestSiteId()

	count, err := s.store.Increment(s.ctx, site)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, Count(1), count)

	current, err := s.store.Current(s.ctx, site)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, Count(1), current)
}

func (s *StoreValidationSuite) IncrementsSequentially(t *testing.T) {
	site := s.MakeTestSiteId()

	for expected := Count(1); expected <= 5; expected++ {
		count, err := s.store.Increment(s.ctx, site)
		if !assert.Nil(t, err) {
			return
		}
		assert.Equal(t, expected, count)
	}

	current, err := s.store.Current(s.ctx, site)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, Count(5), current)
}

func (s *StoreValidationSuite) IsolatesSites(t *testing.T) {
	a := s.MakeTestSiteId()
	b := s.MakeTestSiteId()

	for i := 0; i < 3; i++ {
		if _, err := s.store.Increment(s.ctx, a); !assert.Nil(t, err) {
			return
		}
	}

	count, err := s.store.Increment(s.ctx, b)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, Count(1), count)

	current, err := s.store.Current(s.ctx, a)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, Count(3), current)
}

func (s *StoreValidationSuite) ConcurrentIncrements(t *testing.T) {
	const callers = 25

	site := s.MakeTestSiteId()
	if _, err := s.store.Increment(s.ctx, site); !assert.Nil(t, err) {
		return
	}

	var wg sync.WaitGroup
	results := make([]Count, callers)
	failures := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], failures[i] = s.store.Increment(s.ctx, site)
		}(i)
	}
	wg.Wait()

	for _, err := range failures {
		if !assert.Nil(t, err) {
			return
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })
	for i, count := range results {
		assert.Equal(t, Count(i+2), count)
	}
}
