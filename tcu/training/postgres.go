package training

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	queryActivitiesForDay = `
		SELECT athlete_id, COALESCE(name, ''), COALESCE(moving_time, 0), COALESCE(distance, 0), start_date_local
		FROM strava_activities
		WHERE athlete_id = $1 AND start_date_local >= $2 AND start_date_local < $3
		ORDER BY start_date_local
	`

	queryUpsertTrainingLog = `
		INSERT INTO ai_training_logs (user_id, date, summary, metrics, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, date)
		DO UPDATE SET
			summary = EXCLUDED.summary,
			metrics = EXCLUDED.metrics,
			created_at = NOW()
	`
)

// implements Store over a direct Postgres connection
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ActivitiesForDay(ctx context.Context, athleteID string, day time.Time) ([]Activity, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := s.db.Query(ctx, queryActivitiesForDay, athleteID, start, end)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Activity, error) {
		var a Activity
		err := row.Scan(&a.AthleteID, &a.Name, &a.MovingTime, &a.Distance, &a.StartDateLocal)
		return a, err
	})
}

func (s *PostgresStore) UpsertDailyLog(ctx context.Context, log *TrainingLog) error {
	metrics, err := json.Marshal(log.Metrics)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, queryUpsertTrainingLog, log.UserID, log.Date, log.Summary, metrics)

	return err
}
