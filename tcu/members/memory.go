package members

import (
	"context"
	"sync"
)

// implements Store in memory, for tests
type MemoryStore struct {
	mu      sync.RWMutex
	byAcct  map[string]*Member
	byEmail map[string]*Member
	failErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byAcct:  make(map[string]*Member),
		byEmail: make(map[string]*Member),
	}
}

func (s *MemoryStore) Put(m *Member) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.Account != "" {
		s.byAcct[m.Account] = m
	}

	if m.Email != "" {
		s.byEmail[m.Email] = m
	}
}

// makes all lookups fail with err (nil restores normal behavior)
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

func (s *MemoryStore) FindByAccount(ctx context.Context, account string) (*Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failErr != nil {
		return nil, s.failErr
	}

	return s.byAcct[account], nil
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failErr != nil {
		return nil, s.failErr
	}

	return s.byEmail[email], nil
}
