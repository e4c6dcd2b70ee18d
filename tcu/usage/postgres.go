package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	queryCountChatForDay = `
		SELECT COUNT(*)
		FROM ai_usage_logs
		WHERE strava_id = $1 AND type = $2 AND created_at >= $3 AND created_at < $4
	`

	queryAppendLog = `
		INSERT INTO ai_usage_logs (strava_id, type, message, response, context, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
	`

	queryRecentChat = `
		SELECT strava_id, type, COALESCE(message, ''), COALESCE(response, ''), COALESCE(context, ''), created_at
		FROM ai_usage_logs
		WHERE strava_id = $1 AND type = $2
		ORDER BY created_at DESC
		LIMIT $3
	`
)

// implements Store over a direct Postgres connection
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CountChatForDay(ctx context.Context, stravaID string, t time.Time) (int, error) {
	start, end := dayWindow(t)

	var count int
	err := s.db.QueryRow(ctx, queryCountChatForDay, stravaID, TypeChat, start, end).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *PostgresStore) Append(ctx context.Context, e *LogEntry) error {
	_, err := s.db.Exec(ctx, queryAppendLog,
		e.StravaID,
		e.Type,
		e.Message,
		e.Response,
		e.Context,
		e.CreatedAt,
	)

	return err
}

func (s *PostgresStore) Recent(ctx context.Context, stravaID string, limit int) ([]LogEntry, error) {
	rows, err := s.db.Query(ctx, queryRecentChat, stravaID, TypeChat, limit)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (LogEntry, error) {
		var e LogEntry
		err := row.Scan(&e.StravaID, &e.Type, &e.Message, &e.Response, &e.Context, &e.CreatedAt)
		return e, err
	})
}
