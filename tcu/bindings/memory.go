package bindings

import (
	"context"
	"sync"
)

// implements Store in memory, for tests
type MemoryStore struct {
	mu      sync.RWMutex
	rows    map[string]Binding // keyed by strava_id
	failErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]Binding)}
}

// makes all operations fail with err (nil restores normal behavior)
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

func (s *MemoryStore) FindByStravaID(ctx context.Context, stravaID string) (*Binding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failErr != nil {
		return nil, s.failErr
	}

	b, ok := s.rows[stravaID]
	if !ok {
		return nil, nil
	}

	return &b, nil
}

func (s *MemoryStore) FindByUserID(ctx context.Context, userID string) (*Binding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failErr != nil {
		return nil, s.failErr
	}

	for _, b := range s.rows {
		if b.UserID == userID && userID != "" {
			row := b
			return &row, nil
		}
	}

	return nil, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, b *Binding) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return 0, s.failErr
	}

	s.rows[b.StravaID] = *b

	return 1, nil
}
