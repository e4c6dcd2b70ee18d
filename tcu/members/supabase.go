package members

import (
	"context"
	"fmt"

	"github.com/TCUnion/power/internal/supabase"
)

const tableMembers = "tcu_members"

// implements Store over the Supabase REST API
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) FindByAccount(ctx context.Context, account string) (*Member, error) {
	return s.findBy(ctx, "account", account)
}

func (s *SupabaseStore) FindByEmail(ctx context.Context, email string) (*Member, error) {
	return s.findBy(ctx, "email", email)
}

func (s *SupabaseStore) findBy(ctx context.Context, column, value string) (*Member, error) {
	var rows []Member

	q := supabase.NewQuery().Eq(column, value).Limit(1)
	if err := s.client.Select(ctx, tableMembers, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", tableMembers, column, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return &rows[0], nil
}
