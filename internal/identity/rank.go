package identity

// RankTier is a designer's standing, derived from accumulated XP. The tier
// decides the designer's revenue share unless a superadmin pinned an
// override on the profile.
type RankTier string

const (
	TierBronze   RankTier = "bronze"
	TierSilver   RankTier = "silver"
	TierGold     RankTier = "gold"
	TierPlatinum RankTier = "platinum"
)

type tierRule struct {
	tier     RankTier
	minXP    int
	sharePct int
}

// Ordered highest threshold first.
var tierRules = []tierRule{
	{TierPlatinum, 10000, 80},
	{TierGold, 5000, 70},
	{TierSilver, 1000, 60},
	{TierBronze, 0, 50},
}

// TierForXP maps accumulated XP onto a rank tier.
func TierForXP(xp int) RankTier {
	for _, r := range tierRules {
		if xp >= r.minXP {
			return r.tier
		}
	}
	return TierBronze
}

// RevenueShareForTier returns the designer's percentage cut of sales for a
// tier. Unknown tiers fall back to the bronze share.
func RevenueShareForTier(tier RankTier) int {
	for _, r := range tierRules {
		if r.tier == tier {
			return r.sharePct
		}
	}
	return tierRules[len(tierRules)-1].sharePct
}

// ClampSharePct bounds a manually entered override percentage to [0,100].
func ClampSharePct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
