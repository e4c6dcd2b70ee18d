package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TCUnion/power/tcu/bindings"
	"github.com/TCUnion/power/tcu/members"
	"github.com/TCUnion/power/tcu/settings"
)

type gateFixture struct {
	gate     *Gate
	bindings *bindings.MemoryStore
	members  *members.MemoryStore
	settings *settings.MemoryStore
	usage    *MemoryStore
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()

	f := &gateFixture{
		bindings: bindings.NewMemoryStore(),
		members:  members.NewMemoryStore(),
		settings: settings.NewMemoryStore(),
		usage:    NewMemoryStore(),
	}

	f.gate = NewGate(f.bindings, f.members, f.settings, f.usage)

	return f
}

func (f *gateFixture) bind(t *testing.T, stravaID, account, userID string) {
	t.Helper()

	_, err := f.bindings.Upsert(context.Background(), &bindings.Binding{
		StravaID:   stravaID,
		TCUAccount: account,
		UserID:     userID,
	})
	require.NoError(t, err)
}

func (f *gateFixture) chat(t *testing.T, stravaID string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		err := f.usage.Append(context.Background(), &LogEntry{
			StravaID:  stravaID,
			Type:      TypeChat,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}
}

func TestCheck_NotBound(t *testing.T) {
	f := newGateFixture(t)

	_, err := f.gate.Check(context.Background(), "99999999")

	assert.ErrorIs(t, err, ErrNotBound)
}

func TestCheck_GuestDefaultLimit(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "", "")

	// 4 used, 5th allowed
	f.chat(t, "12345678", 4)

	d, err := f.gate.Check(context.Background(), "12345678")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, members.TierGuest, d.Tier)
	assert.Equal(t, 4, d.Current)
	assert.Equal(t, 5, d.Limit)

	// 5 used, 6th denied
	f.chat(t, "12345678", 1)

	d, err = f.gate.Check(context.Background(), "12345678")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.True(t, d.LimitReached)
	assert.Contains(t, d.Message, "(5/5)")
	assert.Contains(t, d.Message, "已達今日 AI 使用上限")
}

func TestCheck_PremiumTierLimit(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "rider01", "")
	f.members.Put(&members.Member{Account: "rider01", Tier: "premium"})

	d, err := f.gate.Check(context.Background(), "12345678")

	require.NoError(t, err)
	assert.Equal(t, members.TierPremium, d.Tier)
	assert.Equal(t, 50, d.Limit)
}

func TestCheck_SettingsOverride(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "", "")

	_, err := f.settings.Upsert(context.Background(), settings.Setting{
		Key:   "ai_limit_guest",
		Value: "10",
	})
	require.NoError(t, err)

	d, err := f.gate.Check(context.Background(), "12345678")

	require.NoError(t, err)
	assert.Equal(t, 10, d.Limit)
}

func TestCheck_NonNumericOverrideIgnored(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "", "")

	_, err := f.settings.Upsert(context.Background(), settings.Setting{
		Key:   "ai_limit_guest",
		Value: "unlimited",
	})
	require.NoError(t, err)

	d, err := f.gate.Check(context.Background(), "12345678")

	require.NoError(t, err)
	assert.Equal(t, 5, d.Limit)
}

func TestCheck_AdminBypassesOverrides(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "boss", "")
	f.members.Put(&members.Member{Account: "boss", Tier: "site-admin"})

	// admin ignores even an explicit low override
	_, err := f.settings.Upsert(context.Background(), settings.Setting{
		Key:   "ai_limit_guest",
		Value: "1",
	})
	require.NoError(t, err)

	f.chat(t, "12345678", 100)

	d, err := f.gate.Check(context.Background(), "12345678")

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, members.TierAdmin, d.Tier)
	assert.Equal(t, 9999, d.Limit)
}

func TestCheck_MemberLookupFailureDefaultsToGuest(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "rider01", "")
	f.members.FailWith(errors.New("connection refused"))

	d, err := f.gate.Check(context.Background(), "12345678")

	require.NoError(t, err)
	assert.Equal(t, members.TierGuest, d.Tier)
	assert.Equal(t, 5, d.Limit)
}

func TestCheck_CountFailureFailsOpen(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "", "")
	f.usage.FailCountWith(errors.New("timeout"))

	d, err := f.gate.Check(context.Background(), "12345678")

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Current)
}

func TestCheck_YesterdayDoesNotCount(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "", "")

	for i := 0; i < 10; i++ {
		err := f.usage.Append(context.Background(), &LogEntry{
			StravaID:  "12345678",
			Type:      TypeChat,
			CreatedAt: time.Now().AddDate(0, 0, -1),
		})
		require.NoError(t, err)
	}

	d, err := f.gate.Check(context.Background(), "12345678")

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Current)
}

func TestResolveIdentity_NumericIsStravaID(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "", "d53b8d3a-0000-4000-8000-000000000000")

	b, err := f.gate.ResolveIdentity(context.Background(), "12345678")

	require.NoError(t, err)
	assert.Equal(t, "12345678", b.StravaID)
}

func TestResolveIdentity_UUIDIsUserID(t *testing.T) {
	f := newGateFixture(t)
	f.bind(t, "12345678", "", "d53b8d3a-0000-4000-8000-000000000000")

	b, err := f.gate.ResolveIdentity(context.Background(), "d53b8d3a-0000-4000-8000-000000000000")

	require.NoError(t, err)
	assert.Equal(t, "12345678", b.StravaID)
}

func TestResolveIdentity_UnknownUUID(t *testing.T) {
	f := newGateFixture(t)

	_, err := f.gate.ResolveIdentity(context.Background(), "d53b8d3a-0000-4000-8000-000000000000")

	assert.ErrorIs(t, err, ErrNotBound)
}

func TestDayWindow_HalfOpen(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)
	start, end := dayWindow(at)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), end)
}
