package bindings

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/TCUnion/power/internal/logger"
	"github.com/TCUnion/power/tcu/members"
)

// user-facing messages (the frontend is Traditional Chinese)
const (
	msgBindSuccess  = "綁定成功"
	msgWriteFailure = "資料庫寫入失敗"
	msgBindError    = "綁定過程發生錯誤"
)

// Resolver answers binding-status questions and performs binding writes.
// Store faults never escape: they are logged and folded into the result
// structs so the transport layer always has a well-formed answer.
type Resolver struct {
	bindings Store
	members  members.Store
}

func NewResolver(b Store, m members.Store) *Resolver {
	return &Resolver{bindings: b, members: m}
}

// looks up the binding for an athlete and resolves the linked member
// profile, by account first and by email as fallback
func (r *Resolver) Resolve(ctx context.Context, athleteID int64) ResolveResult {
	binding, err := r.bindings.FindByStravaID(ctx, strconv.FormatInt(athleteID, 10))
	if err != nil {
		logger.ErrorErr(err, "failed to check binding status", "athlete_id", athleteID)
		return ResolveResult{Error: err.Error()}
	}

	if binding == nil {
		return ResolveResult{}
	}

	member := r.resolveMember(ctx, binding)

	return ResolveResult{
		IsBound:    true,
		Member:     member,
		StravaName: binding.MemberName,
	}
}

// account takes precedence over email; first non-empty match wins
func (r *Resolver) resolveMember(ctx context.Context, binding *Binding) *members.Member {
	if binding.TCUAccount != "" {
		m, err := r.members.FindByAccount(ctx, binding.TCUAccount)
		if err != nil {
			logger.ErrorErr(err, "member lookup by account failed", "account", binding.TCUAccount)
		} else if m != nil {
			return m
		}
	}

	if binding.TCUMemberEmail != "" {
		m, err := r.members.FindByEmail(ctx, binding.TCUMemberEmail)
		if err != nil {
			logger.ErrorErr(err, "member lookup by email failed", "email", binding.TCUMemberEmail)
		} else if m != nil {
			return m
		}
	}

	return nil
}

// updates the stored Strava display name after a fresh OAuth login; a missing
// binding or a store fault is ignored, the login flow must not depend on it
func (r *Resolver) RefreshName(ctx context.Context, athleteID int64, name string) {
	if name == "" {
		return
	}

	binding, err := r.bindings.FindByStravaID(ctx, strconv.FormatInt(athleteID, 10))
	if err != nil || binding == nil || binding.MemberName == name {
		return
	}

	binding.MemberName = name
	binding.UpdatedAt = time.Now()

	if _, err := r.bindings.Upsert(ctx, binding); err != nil {
		logger.ErrorErr(err, "failed to refresh strava name", "athlete_id", athleteID)
	}
}

// upserts the binding row for the athlete, overwriting every listed field
// and stamping both bound_at and updated_at
func (r *Resolver) Confirm(ctx context.Context, req ConfirmRequest) WriteResult {
	now := time.Now()

	affected, err := r.bindings.Upsert(ctx, &Binding{
		StravaID:       strconv.FormatInt(req.StravaID, 10),
		MemberName:     req.MemberName,
		TCUMemberEmail: req.Email,
		TCUAccount:     req.TCUAccount,
		UserID:         req.UserID,
		BoundAt:        now,
		UpdatedAt:      now,
	})

	if err != nil {
		logger.ErrorErr(err, "failed to confirm binding", "strava_id", req.StravaID)
		return WriteResult{Message: fmt.Sprintf("%s: %s", msgBindError, err.Error())}
	}

	if affected == 0 {
		return WriteResult{Message: msgWriteFailure}
	}

	return WriteResult{
		Success: true,
		Message: msgBindSuccess,
		Member: &members.Member{
			RealName: req.MemberName,
			Email:    req.Email,
			TCUID:    req.TCUAccount,
			Account:  req.TCUAccount,
		},
	}
}
