package bindings

import (
	"context"
	"fmt"
	"time"

	"github.com/TCUnion/power/internal/supabase"
)

const tableBindings = "strava_member_bindings"

// implements Store over the Supabase REST API
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

// wire row with string timestamps, PostgREST rejects zero-valued time.Time
type bindingRow struct {
	StravaID       string  `json:"strava_id"`
	MemberName     string  `json:"member_name"`
	TCUMemberEmail string  `json:"tcu_member_email"`
	TCUAccount     string  `json:"tcu_account"`
	UserID         *string `json:"user_id"`
	BoundAt        string  `json:"bound_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func (s *SupabaseStore) FindByStravaID(ctx context.Context, stravaID string) (*Binding, error) {
	return s.findBy(ctx, "strava_id", stravaID)
}

func (s *SupabaseStore) FindByUserID(ctx context.Context, userID string) (*Binding, error) {
	return s.findBy(ctx, "user_id", userID)
}

func (s *SupabaseStore) findBy(ctx context.Context, column, value string) (*Binding, error) {
	var rows []Binding

	q := supabase.NewQuery().Eq(column, value).Limit(1)
	if err := s.client.Select(ctx, tableBindings, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", tableBindings, column, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return &rows[0], nil
}

func (s *SupabaseStore) Upsert(ctx context.Context, b *Binding) (int, error) {
	row := bindingRow{
		StravaID:       b.StravaID,
		MemberName:     b.MemberName,
		TCUMemberEmail: b.TCUMemberEmail,
		TCUAccount:     b.TCUAccount,
		BoundAt:        b.BoundAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}

	if b.UserID != "" {
		row.UserID = &b.UserID
	}

	var affected []Binding
	if err := s.client.Upsert(ctx, tableBindings, "strava_id", []bindingRow{row}, &affected); err != nil {
		return 0, fmt.Errorf("failed to upsert binding: %w", err)
	}

	return len(affected), nil
}
