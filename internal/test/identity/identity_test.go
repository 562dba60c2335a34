package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fashion-marketplace-backend/internal/identity"
)

func TestResolve_PicksHighestPrivilege(t *testing.T) {
	role, found := identity.Resolve([]string{"designer", "admin"})
	assert.True(t, found)
	assert.Equal(t, identity.RoleAdmin, role)

	role, found = identity.Resolve([]string{"superadmin", "admin", "designer"})
	assert.True(t, found)
	assert.Equal(t, identity.RoleSuperadmin, role)
}

func TestResolve_OrderIndependent(t *testing.T) {
	a, _ := identity.Resolve([]string{"admin", "designer"})
	b, _ := identity.Resolve([]string{"designer", "admin"})
	assert.Equal(t, a, b)
}

func TestResolve_NoUsableRows(t *testing.T) {
	role, found := identity.Resolve(nil)
	assert.False(t, found)
	assert.Equal(t, identity.Role(""), role)

	// Unknown role strings are ignored, not errors.
	role, found = identity.Resolve([]string{"moderator", ""})
	assert.False(t, found)
	assert.Equal(t, identity.Role(""), role)
}

func TestTierForXP_Boundaries(t *testing.T) {
	assert.Equal(t, identity.TierBronze, identity.TierForXP(0))
	assert.Equal(t, identity.TierBronze, identity.TierForXP(999))
	assert.Equal(t, identity.TierSilver, identity.TierForXP(1000))
	assert.Equal(t, identity.TierSilver, identity.TierForXP(4999))
	assert.Equal(t, identity.TierGold, identity.TierForXP(5000))
	assert.Equal(t, identity.TierPlatinum, identity.TierForXP(10000))
	assert.Equal(t, identity.TierPlatinum, identity.TierForXP(250000))
}

func TestRevenueShareForTier(t *testing.T) {
	assert.Equal(t, 50, identity.RevenueShareForTier(identity.TierBronze))
	assert.Equal(t, 60, identity.RevenueShareForTier(identity.TierSilver))
	assert.Equal(t, 70, identity.RevenueShareForTier(identity.TierGold))
	assert.Equal(t, 80, identity.RevenueShareForTier(identity.TierPlatinum))

	// Unknown tier falls back to the bronze share.
	assert.Equal(t, 50, identity.RevenueShareForTier(identity.RankTier("diamond")))
}

func TestClampSharePct(t *testing.T) {
	assert.Equal(t, 0, identity.ClampSharePct(-20))
	assert.Equal(t, 0, identity.ClampSharePct(0))
	assert.Equal(t, 65, identity.ClampSharePct(65))
	assert.Equal(t, 100, identity.ClampSharePct(100))
	assert.Equal(t, 100, identity.ClampSharePct(400))
}
