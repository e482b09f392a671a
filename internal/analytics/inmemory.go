package analytics

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore keeps the counters in process memory for local/dev use.
type InMemoryStore struct {
	mu     sync.RWMutex
	totals Totals
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Track(_ context.Context, gender Gender) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals.TotalVisits++
	switch gender {
	case GenderMale:
		s.totals.MaleCount++
	case GenderFemale:
		s.totals.FemaleCount++
	}
	s.totals.LastUpdated = time.Now().UTC()
	return nil
}

func (s *InMemoryStore) Totals(_ context.Context) (Totals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totals, nil
}

func (s *InMemoryStore) Close() error { return nil }
