// Package memory keeps counts in process. Counts are lost when the process exits, so it suits
// local development and tests rather than deployment.
package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/weegigs/visit-counter-go/visits"
)

var _ visits.CounterStore = (*MemoryCounterStore)(nil)

type MemoryCounterStore struct {
	mu     sync.RWMutex
	counts map[visits.SiteId]*int64
}

func NewCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{counts: map[visits.SiteId]*int64{}}
}

func (s *MemoryCounterStore) counter(site visits.SiteId) *int64 {
	s.mu.RLock()
	count, ok := s.counts[site]
	s.mu.RUnlock()
	if ok {
		return count
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if count, ok := s.counts[site]; ok {
		return count
	}

	count = new(int64)
	s.counts[site] = count
	return count
}

func (s *MemoryCounterStore) Increment(ctx context.Context, site visits.SiteId) (visits.Count, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return visits.Count(atomic.AddInt64(s.counter(site), 1)), nil
}

func (s *MemoryCounterStore) Current(ctx context.Context, site visits.SiteId) (visits.Count, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, ok := s.counts[site]
	if !ok {
		return 0, nil
	}

	return visits.Count(atomic.LoadInt64(count)), nil
}
