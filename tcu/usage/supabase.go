package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/TCUnion/power/internal/supabase"
)

const tableUsageLogs = "ai_usage_logs"

// implements Store over the Supabase REST API
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) CountChatForDay(ctx context.Context, stravaID string, t time.Time) (int, error) {
	start, end := dayWindow(t)

	q := supabase.NewQuery().
		Eq("strava_id", stravaID).
		Eq("type", TypeChat).
		Gte("created_at", start.Format(time.RFC3339)).
		Lt("created_at", end.Format(time.RFC3339))

	n, err := s.client.Count(ctx, tableUsageLogs, q)
	if err != nil {
		return 0, fmt.Errorf("failed to count usage: %w", err)
	}

	return n, nil
}

type logRow struct {
	StravaID  string `json:"strava_id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Context   string `json:"context,omitempty"`
	CreatedAt string `json:"created_at"`
}

func (s *SupabaseStore) Append(ctx context.Context, e *LogEntry) error {
	row := logRow{
		StravaID:  e.StravaID,
		Type:      e.Type,
		Message:   e.Message,
		Response:  e.Response,
		Context:   e.Context,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}

	if err := s.client.Insert(ctx, tableUsageLogs, []logRow{row}); err != nil {
		return fmt.Errorf("failed to append usage log: %w", err)
	}

	return nil
}

func (s *SupabaseStore) Recent(ctx context.Context, stravaID string, limit int) ([]LogEntry, error) {
	var rows []LogEntry

	q := supabase.NewQuery().
		Eq("strava_id", stravaID).
		Eq("type", TypeChat).
		OrderDesc("created_at").
		Limit(limit)

	if err := s.client.Select(ctx, tableUsageLogs, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}

	return rows, nil
}
