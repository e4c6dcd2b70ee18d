package training

import (
	"context"
	"time"
)

// one synced Strava activity row; only the fields the daily summary
// aggregates
type Activity struct {
	AthleteID      string    `json:"athlete_id"`
	Name           string    `json:"name"`
	MovingTime     int       `json:"moving_time"` // seconds
	Distance       float64   `json:"distance"`    // meters
	StartDateLocal time.Time `json:"start_date_local"`
}

// aggregated numbers for one day's riding
type Metrics struct {
	TotalTimeMin    int      `json:"total_time_min"`
	TotalDistanceKM float64  `json:"total_distance_km"`
	ActivitiesCount int      `json:"activities_count"`
	Details         []string `json:"details"`
}

// one ai_training_logs row, keyed by (user_id, date)
type TrainingLog struct {
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Summary   string    `json:"summary"`
	Metrics   Metrics   `json:"metrics"`
	CreatedAt time.Time `json:"created_at"`
}

type Store interface {
	ActivitiesForDay(ctx context.Context, athleteID string, day time.Time) ([]Activity, error)
	UpsertDailyLog(ctx context.Context, log *TrainingLog) error
}
