package usage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TCUnion/power/internal/logger"
	"github.com/TCUnion/power/tcu/bindings"
	"github.com/TCUnion/power/tcu/members"
	"github.com/TCUnion/power/tcu/settings"
)

// per-tier daily defaults, overridable via system_settings
const (
	defaultGuestLimit   = 5
	defaultBasicLimit   = 10
	defaultPremiumLimit = 50
	adminLimit          = 9999

	settingLimitGuest   = "ai_limit_guest"
	settingLimitBasic   = "ai_limit_basic"
	settingLimitPremium = "ai_limit_premium"
)

// the caller has no binding row, so there is no athlete to meter
var ErrNotBound = errors.New("user not bound to a TCU membership")

// quota decision for one chat request
type Decision struct {
	Allowed      bool
	LimitReached bool
	StravaID     string
	Tier         members.Tier
	Current      int
	Limit        int
	Message      string
}

// Gate decides whether a chat request may proceed, from the caller's tier,
// the configured limits and today's usage count.
type Gate struct {
	bindings bindings.Store
	members  members.Store
	settings settings.Store
	usage    Store
}

func NewGate(b bindings.Store, m members.Store, s settings.Store, u Store) *Gate {
	return &Gate{bindings: b, members: m, settings: s, usage: u}
}

// maps an externally supplied identifier to the athlete's binding. A pure
// numeric identifier is a Strava athlete ID; anything else is treated as the
// auth user UUID stored on the binding.
func (g *Gate) ResolveIdentity(ctx context.Context, identity string) (*bindings.Binding, error) {
	var (
		b   *bindings.Binding
		err error
	)

	if isNumeric(identity) {
		b, err = g.bindings.FindByStravaID(ctx, identity)
	} else {
		b, err = g.bindings.FindByUserID(ctx, identity)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	if b == nil {
		return nil, ErrNotBound
	}

	return b, nil
}

// runs the full quota check: resolve binding, determine tier, compute the
// effective limit, count today's usage, allow or deny
func (g *Gate) Check(ctx context.Context, identity string) (*Decision, error) {
	binding, err := g.ResolveIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}

	tier := g.memberTier(ctx, binding)
	limit := g.effectiveLimit(ctx, tier)

	current, err := g.usage.CountChatForDay(ctx, binding.StravaID, time.Now())
	if err != nil {
		// fail open: a broken usage count must not deny service
		logger.ErrorErr(err, "usage count failed, allowing request", "strava_id", binding.StravaID)
		current = 0
	}

	d := &Decision{
		StravaID: binding.StravaID,
		Tier:     tier,
		Current:  current,
		Limit:    limit,
	}

	if current >= limit {
		d.LimitReached = true
		d.Message = fmt.Sprintf("已達今日 AI 使用上限 (%d/%d)，請明天再試。Daily AI usage limit reached, please try again tomorrow.", current, limit)
		return d, nil
	}

	d.Allowed = true

	return d, nil
}

// tier defaults to guest whenever the member lookup fails or finds nothing
func (g *Gate) memberTier(ctx context.Context, binding *bindings.Binding) members.Tier {
	if binding.TCUAccount == "" {
		return members.TierGuest
	}

	member, err := g.members.FindByAccount(ctx, binding.TCUAccount)
	if err != nil {
		logger.ErrorErr(err, "tier lookup failed, defaulting to guest", "account", binding.TCUAccount)
		return members.TierGuest
	}

	if member == nil {
		return members.TierGuest
	}

	return members.ParseTier(member.Tier)
}

// admin is unlimited regardless of overrides; other tiers take the
// system_settings override when present, else the hardcoded default
func (g *Gate) effectiveLimit(ctx context.Context, tier members.Tier) int {
	if tier.Unlimited() {
		return adminLimit
	}

	overrides := map[string]int{}

	rows, err := g.settings.All(ctx)
	if err != nil {
		logger.ErrorErr(err, "settings fetch failed, using default limits")
	} else {
		overrides = settings.IntValues(rows)
	}

	switch tier {
	case members.TierBasic:
		return limitOr(overrides, settingLimitBasic, defaultBasicLimit)
	case members.TierPremium:
		return limitOr(overrides, settingLimitPremium, defaultPremiumLimit)
	default:
		return limitOr(overrides, settingLimitGuest, defaultGuestLimit)
	}
}

func limitOr(overrides map[string]int, key string, fallback int) int {
	if v, ok := overrides[key]; ok {
		return v
	}

	return fallback
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
