package settings

import (
	"context"
	"sort"
	"sync"
)

// implements Store in memory, for tests
type MemoryStore struct {
	mu      sync.RWMutex
	rows    map[string]Setting
	failErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]Setting)}
}

func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

func (s *MemoryStore) All(ctx context.Context) ([]Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failErr != nil {
		return nil, s.failErr
	}

	out := make([]Setting, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, setting Setting) (*Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return nil, s.failErr
	}

	s.rows[setting.Key] = setting

	return &setting, nil
}
