package usage

import (
	"context"
	"sort"
	"time"

	"sync"
)

// implements Store in memory, for tests
type MemoryStore struct {
	mu       sync.RWMutex
	rows     []LogEntry
	countErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// makes CountChatForDay fail with err (nil restores normal behavior)
func (s *MemoryStore) FailCountWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countErr = err
}

func (s *MemoryStore) CountChatForDay(ctx context.Context, stravaID string, t time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.countErr != nil {
		return 0, s.countErr
	}

	start, end := dayWindow(t)

	count := 0
	for _, e := range s.rows {
		if e.StravaID == stravaID && e.Type == TypeChat &&
			!e.CreatedAt.Before(start) && e.CreatedAt.Before(end) {
			count++
		}
	}

	return count, nil
}

func (s *MemoryStore) Append(ctx context.Context, e *LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, *e)

	return nil
}

func (s *MemoryStore) Recent(ctx context.Context, stravaID string, limit int) ([]LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []LogEntry
	for _, e := range s.rows {
		if e.StravaID == stravaID && e.Type == TypeChat {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
