package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/TCUnion/power/internal/supabase"
)

const tableSettings = "system_settings"

// implements Store over the Supabase REST API
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) All(ctx context.Context) ([]Setting, error) {
	var rows []Setting

	if err := s.client.Select(ctx, tableSettings, supabase.NewQuery(), &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	return rows, nil
}

type settingRow struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

func (s *SupabaseStore) Upsert(ctx context.Context, setting Setting) (*Setting, error) {
	row := settingRow{
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		UpdatedAt:   time.Now().Format(time.RFC3339),
	}

	var affected []Setting
	if err := s.client.Upsert(ctx, tableSettings, "key", []settingRow{row}, &affected); err != nil {
		return nil, fmt.Errorf("failed to upsert setting %s: %w", setting.Key, err)
	}

	if len(affected) == 0 {
		return nil, nil
	}

	return &affected[0], nil
}
