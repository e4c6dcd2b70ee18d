package training

import (
	"context"
	"sync"
	"time"
)

// implements Store in memory, for tests
type MemoryStore struct {
	mu         sync.RWMutex
	activities []Activity
	logs       map[string]TrainingLog // keyed by user_id + "/" + date
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{logs: make(map[string]TrainingLog)}
}

func (s *MemoryStore) AddActivity(a Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append(s.activities, a)
}

func (s *MemoryStore) Log(userID, date string) (TrainingLog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log, ok := s.logs[userID+"/"+date]
	return log, ok
}

func (s *MemoryStore) ActivitiesForDay(ctx context.Context, athleteID string, day time.Time) ([]Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var out []Activity
	for _, a := range s.activities {
		if a.AthleteID == athleteID && !a.StartDateLocal.Before(start) && a.StartDateLocal.Before(end) {
			out = append(out, a)
		}
	}

	return out, nil
}

func (s *MemoryStore) UpsertDailyLog(ctx context.Context, log *TrainingLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs[log.UserID+"/"+log.Date] = *log

	return nil
}
