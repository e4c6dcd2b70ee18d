package bindings

import (
	"context"
	"time"

	"github.com/TCUnion/power/tcu/members"
)

// associates a Strava athlete with a TCU membership record. StravaID is the
// string form of the numeric athlete ID and the only key; at most one row
// exists per athlete (upsert semantics, last write wins). A binding may
// reference no resolvable member (stale or unverified) — that is a valid
// state, not an error.
type Binding struct {
	StravaID       string    `json:"strava_id"`
	MemberName     string    `json:"member_name"`
	TCUMemberEmail string    `json:"tcu_member_email"`
	TCUAccount     string    `json:"tcu_account"`
	UserID         string    `json:"user_id,omitempty"`
	BoundAt        time.Time `json:"bound_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// persists bindings. Find methods return (nil, nil) when no row matches.
// Upsert returns the number of affected rows.
type Store interface {
	FindByStravaID(ctx context.Context, stravaID string) (*Binding, error)
	FindByUserID(ctx context.Context, userID string) (*Binding, error)
	Upsert(ctx context.Context, b *Binding) (int, error)
}

// outcome of a binding-status lookup, shaped for the frontend
type ResolveResult struct {
	IsBound    bool            `json:"isBound"`
	Member     *members.Member `json:"member_data"`
	StravaName string          `json:"strava_name"`
	Error      string          `json:"error,omitempty"`
}

// outcome of a confirm-binding write
type WriteResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Member  *members.Member `json:"member_data,omitempty"`
}

// input for the binding writer
type ConfirmRequest struct {
	Email      string
	StravaID   int64
	TCUAccount string
	MemberName string
	UserID     string
}
