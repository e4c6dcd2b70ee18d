package members

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	assert.Equal(t, TierBasic, ParseTier("basic"))
	assert.Equal(t, TierPremium, ParseTier("premium"))
	assert.Equal(t, TierGuest, ParseTier("guest"))
	assert.Equal(t, TierGuest, ParseTier(""))
	assert.Equal(t, TierGuest, ParseTier("gold")) // unknown tier
	assert.Equal(t, TierBasic, ParseTier("  Basic  "))
}

func TestParseTier_AdminSubstring(t *testing.T) {
	// the membership table stores admin roles in several spellings
	assert.Equal(t, TierAdmin, ParseTier("admin"))
	assert.Equal(t, TierAdmin, ParseTier("Admin"))
	assert.Equal(t, TierAdmin, ParseTier("site-admin"))
	assert.Equal(t, TierAdmin, ParseTier("administrator"))
}

func TestTier_Unlimited(t *testing.T) {
	assert.True(t, TierAdmin.Unlimited())
	assert.False(t, TierGuest.Unlimited())
	assert.False(t, TierBasic.Unlimited())
	assert.False(t, TierPremium.Unlimited())
}
