package usage

import (
	"context"
	"time"
)

const TypeChat = "chat"

// one ai_usage_logs row; append-only, doubles as audit log and
// quota-counting source
type LogEntry struct {
	StravaID  string    `json:"strava_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Context   string    `json:"context,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// persists usage log rows. CountChatForDay counts type="chat" rows for the
// athlete within the local calendar day containing t, using the half-open
// window [00:00, next day 00:00).
type Store interface {
	CountChatForDay(ctx context.Context, stravaID string, t time.Time) (int, error)
	Append(ctx context.Context, e *LogEntry) error
	Recent(ctx context.Context, stravaID string, limit int) ([]LogEntry, error)
}

// local-day bounds for quota counting
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
