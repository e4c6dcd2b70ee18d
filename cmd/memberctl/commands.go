package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TCUnion/power/tcu/bindings"
	"github.com/TCUnion/power/tcu/members"
	"github.com/TCUnion/power/tcu/settings"
)

// finds a member by email when the argument contains '@', by account
// otherwise
func lookupMember(ctx context.Context, d *deps, arg string) error {
	var (
		m   *members.Member
		err error
	)

	if strings.Contains(arg, "@") {
		m, err = d.members.FindByEmail(ctx, arg)
	} else {
		m, err = d.members.FindByAccount(ctx, arg)
	}

	if err != nil {
		return err
	}

	if m == nil {
		fmt.Printf("no member found for %q\n", arg)
		return nil
	}

	fmt.Printf("account:  %s\n", m.Account)
	fmt.Printf("tcu_id:   %s\n", m.TCUID)
	fmt.Printf("name:     %s\n", m.RealName)
	fmt.Printf("email:    %s\n", m.Email)
	fmt.Printf("tier:     %s (parsed: %s)\n", m.Tier, members.ParseTier(m.Tier))

	return nil
}

func lookupBinding(ctx context.Context, d *deps, stravaID string) error {
	b, err := d.bindings.FindByStravaID(ctx, stravaID)
	if err != nil {
		return err
	}

	if b == nil {
		fmt.Printf("athlete %s is not bound\n", stravaID)
		return nil
	}

	fmt.Printf("strava_id:  %s\n", b.StravaID)
	fmt.Printf("name:       %s\n", b.MemberName)
	fmt.Printf("account:    %s\n", b.TCUAccount)
	fmt.Printf("email:      %s\n", b.TCUMemberEmail)
	fmt.Printf("user_id:    %s\n", b.UserID)
	fmt.Printf("bound_at:   %s\n", b.BoundAt.Format(time.RFC3339))

	if b.TCUAccount != "" {
		return lookupMember(ctx, d, b.TCUAccount)
	}

	return nil
}

// prints every ai_limit_* override alongside the raw settings rows
func showLimits(ctx context.Context, d *deps) error {
	rows, err := d.settings.All(ctx)
	if err != nil {
		return err
	}

	overrides := settings.IntValues(rows)

	fmt.Println("defaults: guest=5 basic=10 premium=50 admin=9999")
	fmt.Println("overrides:")

	found := false
	for _, s := range rows {
		if !strings.HasPrefix(s.Key, "ai_limit_") {
			continue
		}

		found = true
		if v, ok := overrides[s.Key]; ok {
			fmt.Printf("  %s = %d\n", s.Key, v)
		} else {
			fmt.Printf("  %s = %q (not numeric, ignored)\n", s.Key, s.Value)
		}
	}

	if !found {
		fmt.Println("  (none)")
	}

	return nil
}

func showUsage(ctx context.Context, d *deps, stravaID string) error {
	count, err := d.usage.CountChatForDay(ctx, stravaID, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("athlete %s: %d chat requests today\n", stravaID, count)

	entries, err := d.usage.Recent(ctx, stravaID, 5)
	if err != nil {
		return err
	}

	for _, e := range entries {
		msg := e.Message
		if len(msg) > 60 {
			msg = msg[:60] + "..."
		}
		fmt.Printf("  %s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), msg)
	}

	return nil
}

// writes a binding row pointing at a generated auth UUID, for exercising
// the UUID identity path end to end
func setupTestUser(ctx context.Context, d *deps, stravaID string) error {
	userID := uuid.NewString()
	now := time.Now()

	affected, err := d.bindings.Upsert(ctx, &bindings.Binding{
		StravaID:       stravaID,
		MemberName:     "Test Athlete",
		TCUMemberEmail: "test@criterium.tw",
		TCUAccount:     "test_account",
		UserID:         userID,
		BoundAt:        now,
		UpdatedAt:      now,
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return fmt.Errorf("upsert affected no rows")
	}

	fmt.Printf("test binding created: strava_id=%s user_id=%s\n", stravaID, userID)

	return nil
}
