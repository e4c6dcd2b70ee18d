package training

import (
	"context"
	"fmt"
	"time"

	"github.com/TCUnion/power/internal/supabase"
)

const (
	tableActivities   = "strava_activities"
	tableTrainingLogs = "ai_training_logs"
)

// implements Store over the Supabase REST API
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) ActivitiesForDay(ctx context.Context, athleteID string, day time.Time) ([]Activity, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var rows []Activity

	q := supabase.NewQuery().
		Eq("athlete_id", athleteID).
		Gte("start_date_local", start.Format(time.RFC3339)).
		Lt("start_date_local", end.Format(time.RFC3339))

	if err := s.client.Select(ctx, tableActivities, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	return rows, nil
}

type trainingLogRow struct {
	UserID    string  `json:"user_id"`
	Date      string  `json:"date"`
	Summary   string  `json:"summary"`
	Metrics   Metrics `json:"metrics"`
	CreatedAt string  `json:"created_at"`
}

func (s *SupabaseStore) UpsertDailyLog(ctx context.Context, log *TrainingLog) error {
	row := trainingLogRow{
		UserID:    log.UserID,
		Date:      log.Date,
		Summary:   log.Summary,
		Metrics:   log.Metrics,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := s.client.Upsert(ctx, tableTrainingLogs, "user_id,date", []trainingLogRow{row}, nil); err != nil {
		return fmt.Errorf("failed to upsert training log: %w", err)
	}

	return nil
}
