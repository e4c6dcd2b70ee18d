package settings

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	queryAllSettings = `
		SELECT key, value, COALESCE(description, '')
		FROM system_settings
		ORDER BY key
	`

	queryUpsertSetting = `
		INSERT INTO system_settings (key, value, description, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NOW())
		ON CONFLICT (key)
		DO UPDATE SET
			value = EXCLUDED.value,
			description = COALESCE(EXCLUDED.description, system_settings.description),
			updated_at = NOW()
		RETURNING key, value, COALESCE(description, '')
	`
)

// implements Store over a direct Postgres connection
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) All(ctx context.Context) ([]Setting, error) {
	rows, err := s.db.Query(ctx, queryAllSettings)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Setting, error) {
		var st Setting
		err := row.Scan(&st.Key, &st.Value, &st.Description)
		return st, err
	})
}

func (s *PostgresStore) Upsert(ctx context.Context, setting Setting) (*Setting, error) {
	var st Setting

	err := s.db.QueryRow(ctx, queryUpsertSetting, setting.Key, setting.Value, setting.Description).
		Scan(&st.Key, &st.Value, &st.Description)

	if err != nil {
		return nil, err
	}

	return &st, nil
}
