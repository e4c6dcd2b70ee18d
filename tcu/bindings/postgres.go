package bindings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// implements Store over a direct Postgres connection
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByStravaID(ctx context.Context, stravaID string) (*Binding, error) {
	return s.findOne(ctx, queryFindByStravaID, stravaID)
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID string) (*Binding, error) {
	return s.findOne(ctx, queryFindByUserID, userID)
}

func (s *PostgresStore) findOne(ctx context.Context, query, arg string) (*Binding, error) {
	var b Binding

	err := s.db.QueryRow(ctx, query, arg).Scan(
		&b.StravaID,
		&b.MemberName,
		&b.TCUMemberEmail,
		&b.TCUAccount,
		&b.UserID,
		&b.BoundAt,
		&b.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, b *Binding) (int, error) {
	tag, err := s.db.Exec(ctx, queryUpsertBinding,
		b.StravaID,
		b.MemberName,
		b.TCUMemberEmail,
		b.TCUAccount,
		b.UserID,
		b.BoundAt,
		b.UpdatedAt,
	)

	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}
