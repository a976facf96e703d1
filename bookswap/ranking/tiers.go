package ranking

import (
	"math"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

// tierThreshold is one row of the tier table. Ranges are contiguous and
// non-overlapping; every non-negative score falls in exactly one tier.
type tierThreshold struct {
	Tier models.Tier
	Min  int
	Max  int // math.MaxInt for the open-ended top tier
}

var tierThresholds = []tierThreshold{
	{models.TierBronze, 0, 999},
	{models.TierSilver, 1000, 2499},
	{models.TierGold, 2500, 4999},
	{models.TierPlatinum, 5000, 7499},
	{models.TierDiamond, 7500, 9999},
	{models.TierLegendary, 10000, math.MaxInt},
}

// TierFor returns the tier whose range contains score. Negative scores map
// to bronze; they never occur in persisted records.
func TierFor(score int) models.Tier {
	for _, t := range tierThresholds {
		if score >= t.Min && score <= t.Max {
			return t.Tier
		}
	}
	return models.TierBronze
}

// TierPriority returns the ordinal position of a tier, bronze = 0. Unknown
// tiers sort below bronze.
func TierPriority(tier models.Tier) int {
	for i, t := range tierThresholds {
		if t.Tier == tier {
			return i
		}
	}
	return -1
}

// IsPremiumTier reports whether the tier gets matching priority.
func IsPremiumTier(tier models.Tier) bool {
	switch tier {
	case models.TierPlatinum, models.TierDiamond, models.TierLegendary:
		return true
	}
	return false
}

// TierProgress describes how far a score has advanced through its tier.
type TierProgress struct {
	Current models.Tier `json:"current"`
	Next    models.Tier `json:"next,omitempty"`
	Percent int         `json:"percent"`
}

// ProgressToNextTier computes the position of score within its tier's range
// as a 0-100 percentage. Legendary has no next tier and reports 100.
func ProgressToNextTier(score int) TierProgress {
	for i, t := range tierThresholds {
		if score < t.Min || score > t.Max {
			continue
		}
		if i == len(tierThresholds)-1 {
			return TierProgress{Current: t.Tier, Percent: 100}
		}
		span := t.Max - t.Min + 1
		percent := int(math.Round(float64(score-t.Min) / float64(span) * 100))
		return TierProgress{
			Current: t.Tier,
			Next:    tierThresholds[i+1].Tier,
			Percent: percent,
		}
	}
	return TierProgress{Current: models.TierBronze, Next: models.TierSilver}
}
