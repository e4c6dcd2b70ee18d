package bindings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TCUnion/power/tcu/members"
)

func newTestResolver() (*Resolver, *MemoryStore, *members.MemoryStore) {
	bindingStore := NewMemoryStore()
	memberStore := members.NewMemoryStore()
	return NewResolver(bindingStore, memberStore), bindingStore, memberStore
}

func TestResolve_NotBound(t *testing.T) {
	resolver, _, _ := newTestResolver()

	result := resolver.Resolve(context.Background(), 12345678)

	assert.False(t, result.IsBound)
	assert.Nil(t, result.Member)
	assert.Empty(t, result.Error)
}

func TestResolve_BoundWithMemberByAccount(t *testing.T) {
	resolver, bindingStore, memberStore := newTestResolver()

	memberStore.Put(&members.Member{
		Account:  "rider01",
		Email:    "rider@example.com",
		RealName: "王小明",
		Tier:     "premium",
	})

	_, err := bindingStore.Upsert(context.Background(), &Binding{
		StravaID:   "12345678",
		MemberName: "Ming Wang",
		TCUAccount: "rider01",
	})
	require.NoError(t, err)

	result := resolver.Resolve(context.Background(), 12345678)

	assert.True(t, result.IsBound)
	require.NotNil(t, result.Member)
	assert.Equal(t, "王小明", result.Member.RealName)
	assert.Equal(t, "Ming Wang", result.StravaName)
}

func TestResolve_AccountTakesPrecedenceOverEmail(t *testing.T) {
	resolver, bindingStore, memberStore := newTestResolver()

	memberStore.Put(&members.Member{Account: "rider01", RealName: "By Account"})
	memberStore.Put(&members.Member{Email: "rider@example.com", RealName: "By Email"})

	_, err := bindingStore.Upsert(context.Background(), &Binding{
		StravaID:       "12345678",
		TCUAccount:     "rider01",
		TCUMemberEmail: "rider@example.com",
	})
	require.NoError(t, err)

	result := resolver.Resolve(context.Background(), 12345678)

	require.NotNil(t, result.Member)
	assert.Equal(t, "By Account", result.Member.RealName)
}

func TestResolve_EmailFallback(t *testing.T) {
	resolver, bindingStore, memberStore := newTestResolver()

	memberStore.Put(&members.Member{Email: "rider@example.com", RealName: "By Email"})

	_, err := bindingStore.Upsert(context.Background(), &Binding{
		StravaID:       "12345678",
		TCUAccount:     "no-such-account",
		TCUMemberEmail: "rider@example.com",
	})
	require.NoError(t, err)

	result := resolver.Resolve(context.Background(), 12345678)

	require.NotNil(t, result.Member)
	assert.Equal(t, "By Email", result.Member.RealName)
}

func TestResolve_BindingWithoutMember(t *testing.T) {
	resolver, bindingStore, _ := newTestResolver()

	_, err := bindingStore.Upsert(context.Background(), &Binding{
		StravaID:   "12345678",
		MemberName: "Unlinked Athlete",
		TCUAccount: "stale-account",
	})
	require.NoError(t, err)

	result := resolver.Resolve(context.Background(), 12345678)

	// bound but unresolvable member is a valid state
	assert.True(t, result.IsBound)
	assert.Nil(t, result.Member)
	assert.Equal(t, "Unlinked Athlete", result.StravaName)
}

func TestResolve_StoreErrorIsSoft(t *testing.T) {
	resolver, bindingStore, _ := newTestResolver()

	bindingStore.FailWith(errors.New("connection refused"))

	result := resolver.Resolve(context.Background(), 12345678)

	assert.False(t, result.IsBound)
	assert.Contains(t, result.Error, "connection refused")
}

func TestConfirm_Success(t *testing.T) {
	resolver, bindingStore, _ := newTestResolver()

	result := resolver.Confirm(context.Background(), ConfirmRequest{
		Email:      "rider@example.com",
		StravaID:   12345678,
		TCUAccount: "rider01",
		MemberName: "Ming Wang",
	})

	assert.True(t, result.Success)
	assert.Equal(t, "綁定成功", result.Message)
	require.NotNil(t, result.Member)
	assert.Equal(t, "rider01", result.Member.Account)
	assert.Equal(t, "rider@example.com", result.Member.Email)

	stored, err := bindingStore.FindByStravaID(context.Background(), "12345678")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "rider01", stored.TCUAccount)
	assert.False(t, stored.BoundAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestConfirm_OverwritesExistingBinding(t *testing.T) {
	resolver, bindingStore, _ := newTestResolver()

	first := resolver.Confirm(context.Background(), ConfirmRequest{
		Email:    "old@example.com",
		StravaID: 12345678,
	})
	require.True(t, first.Success)

	second := resolver.Confirm(context.Background(), ConfirmRequest{
		Email:    "new@example.com",
		StravaID: 12345678,
	})
	require.True(t, second.Success)

	stored, err := bindingStore.FindByStravaID(context.Background(), "12345678")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "new@example.com", stored.TCUMemberEmail)
}

func TestRefreshName_UpdatesBoundAthlete(t *testing.T) {
	resolver, bindingStore, _ := newTestResolver()

	_, err := bindingStore.Upsert(context.Background(), &Binding{
		StravaID:   "12345678",
		MemberName: "Old Name",
	})
	require.NoError(t, err)

	resolver.RefreshName(context.Background(), 12345678, "New Name")

	stored, err := bindingStore.FindByStravaID(context.Background(), "12345678")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "New Name", stored.MemberName)
}

func TestRefreshName_NoBindingIsNoop(t *testing.T) {
	resolver, bindingStore, _ := newTestResolver()

	resolver.RefreshName(context.Background(), 12345678, "New Name")

	stored, err := bindingStore.FindByStravaID(context.Background(), "12345678")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestConfirm_StoreError(t *testing.T) {
	resolver, bindingStore, _ := newTestResolver()

	bindingStore.FailWith(errors.New("write timeout"))

	result := resolver.Confirm(context.Background(), ConfirmRequest{
		Email:    "rider@example.com",
		StravaID: 12345678,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "綁定過程發生錯誤")
	assert.Nil(t, result.Member)
}
