package members

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

func (s *PostgresStore) FindByAccount(ctx context.Context, account string) (*Member, error) {
	return s.findOne(ctx, queryFindByAccount, account)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*Member, error) {
	return s.findOne(ctx, queryFindByEmail, email)
}

func (s *PostgresStore) findOne(ctx context.Context, query, arg string) (*Member, error) {
	var m Member

	err := s.db.QueryRow(ctx, query, arg).Scan(
		&m.Account,
		&m.TCUID,
		&m.Email,
		&m.RealName,
		&m.Tier,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &m, nil
}
