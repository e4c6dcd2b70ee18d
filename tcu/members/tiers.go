package members

import "strings"

// membership tier governing the AI quota
type Tier string

const (
	TierGuest   Tier = "guest"
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
	TierAdmin   Tier = "admin"
)

// normalizes a free-text tier string from the membership table. Anything
// containing "admin" (e.g. "Admin", "site-admin") counts as admin; unknown
// values fall back to guest.
func ParseTier(s string) Tier {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.Contains(s, "admin"):
		return TierAdmin
	case s == string(TierBasic):
		return TierBasic
	case s == string(TierPremium):
		return TierPremium
	default:
		return TierGuest
	}
}

// reports whether the tier bypasses the per-day quota
func (t Tier) Unlimited() bool {
	return t == TierAdmin
}
