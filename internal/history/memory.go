package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Repository, useful for tests. The qlessd
// service itself always persists through SQLiteStore.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*SolveRun
}

// NewMemoryStore builds an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]*SolveRun)}
}

func (s *MemoryStore) Store(ctx context.Context, run *SolveRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	clone := *run
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now().UTC()
	}
	s.runs[run.ID] = &clone
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*SolveRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *run
	return &clone, nil
}

func (s *MemoryStore) List(ctx context.Context, filter Filter) ([]*SolveRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*SolveRun
	for _, run := range s.runs {
		if filter.Success != nil && run.Success != *filter.Success {
			continue
		}
		clone := *run
		out = append(out, &clone)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) Migrate(ctx context.Context) error { return nil }
func (s *MemoryStore) Close() error                      { return nil }
