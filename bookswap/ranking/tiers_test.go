package ranking

import (
	"math"
	"testing"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  models.Tier
	}{
		{"zero score", 0, models.TierBronze},
		{"bronze upper edge", 999, models.TierBronze},
		{"silver lower edge", 1000, models.TierSilver},
		{"silver upper edge", 2499, models.TierSilver},
		{"gold lower edge", 2500, models.TierGold},
		{"gold upper edge", 4999, models.TierGold},
		{"platinum lower edge", 5000, models.TierPlatinum},
		{"platinum upper edge", 7499, models.TierPlatinum},
		{"diamond lower edge", 7500, models.TierDiamond},
		{"diamond upper edge", 9999, models.TierDiamond},
		{"legendary lower edge", 10000, models.TierLegendary},
		{"far beyond legendary", 123456, models.TierLegendary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierFor(tt.score); got != tt.want {
				t.Errorf("TierFor(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestTierThresholdsContiguous(t *testing.T) {
	if tierThresholds[0].Min != 0 {
		t.Errorf("first tier starts at %d, want 0", tierThresholds[0].Min)
	}
	for i := 1; i < len(tierThresholds); i++ {
		prev, cur := tierThresholds[i-1], tierThresholds[i]
		if cur.Min != prev.Max+1 {
			t.Errorf("gap between %s (max %d) and %s (min %d)", prev.Tier, prev.Max, cur.Tier, cur.Min)
		}
	}
	if tierThresholds[len(tierThresholds)-1].Max != math.MaxInt {
		t.Error("top tier is not open-ended")
	}
}

// Every score in a wide range maps to exactly one tier, and the tier never
// goes down as the score goes up.
func TestTierForMonotonic(t *testing.T) {
	prev := -1
	for score := 0; score <= 20000; score++ {
		tier := TierFor(score)
		priority := TierPriority(tier)
		if priority < 0 {
			t.Fatalf("TierFor(%d) returned unknown tier %v", score, tier)
		}
		if priority < prev {
			t.Fatalf("tier priority decreased at score %d: %v", score, tier)
		}
		prev = priority
	}
}

func TestProgressToNextTier(t *testing.T) {
	tests := []struct {
		name        string
		score       int
		wantCurrent models.Tier
		wantNext    models.Tier
		wantPercent int
	}{
		{"quarter through bronze", 250, models.TierBronze, models.TierSilver, 25},
		{"start of silver", 1000, models.TierSilver, models.TierGold, 0},
		{"middle of gold", 3750, models.TierGold, models.TierPlatinum, 50},
		{"legendary is terminal", 15000, models.TierLegendary, "", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressToNextTier(tt.score)
			if got.Current != tt.wantCurrent {
				t.Errorf("Current = %v, want %v", got.Current, tt.wantCurrent)
			}
			if got.Next != tt.wantNext {
				t.Errorf("Next = %v, want %v", got.Next, tt.wantNext)
			}
			if got.Percent != tt.wantPercent {
				t.Errorf("Percent = %d, want %d", got.Percent, tt.wantPercent)
			}
		})
	}
}

func TestIsPremiumTier(t *testing.T) {
	premium := []models.Tier{models.TierPlatinum, models.TierDiamond, models.TierLegendary}
	regular := []models.Tier{models.TierBronze, models.TierSilver, models.TierGold}

	for _, tier := range premium {
		if !IsPremiumTier(tier) {
			t.Errorf("IsPremiumTier(%v) = false, want true", tier)
		}
	}
	for _, tier := range regular {
		if IsPremiumTier(tier) {
			t.Errorf("IsPremiumTier(%v) = true, want false", tier)
		}
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	cfg := NewDefaultConfig()
	if sum := cfg.Weights.Sum(); math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum = %v, want 1.0", sum)
	}
}
