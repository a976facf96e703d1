package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"go.uber.org/mock/gomock"
)

func TestApplyDecay(t *testing.T) {
	s, rankings, _ := newServiceMocks(t)

	candidates := []*models.UserRanking{
		// 1200 * 0.95 = 1140: stays silver.
		{UserID: 1, TotalScore: 1200, TradingScore: 600, ReputationScore: 600, Tier: models.TierSilver},
		// 1000 * 0.95 = 950: drops to bronze.
		{UserID: 2, TotalScore: 1000, TradingScore: 1000, Tier: models.TierSilver},
	}

	rankings.EXPECT().GetDecayCandidates(gomock.Any(), gomock.Any()).Return(candidates, nil)
	rankings.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	decayed, err := s.ApplyDecay(context.Background())
	if err != nil {
		t.Fatalf("ApplyDecay() error = %v", err)
	}
	if decayed != 2 {
		t.Errorf("ApplyDecay() = %d, want 2", decayed)
	}

	if candidates[0].TotalScore != 1140 {
		t.Errorf("TotalScore = %d, want 1140", candidates[0].TotalScore)
	}
	if candidates[0].Tier != models.TierSilver {
		t.Errorf("Tier = %v, want silver to survive decay", candidates[0].Tier)
	}
	if candidates[0].TradingScore != 570 {
		t.Errorf("TradingScore = %d, want 570", candidates[0].TradingScore)
	}

	if candidates[1].TotalScore != 950 {
		t.Errorf("TotalScore = %d, want 950", candidates[1].TotalScore)
	}
	if candidates[1].Tier != models.TierBronze {
		t.Errorf("Tier = %v, want re-derived bronze", candidates[1].Tier)
	}
}

func TestApplyDecaySkipsFailedRecords(t *testing.T) {
	s, rankings, _ := newServiceMocks(t)

	candidates := []*models.UserRanking{
		{UserID: 1, TotalScore: 2000, Tier: models.TierSilver},
		{UserID: 2, TotalScore: 2000, Tier: models.TierSilver},
		{UserID: 3, TotalScore: 2000, Tier: models.TierSilver},
	}

	rankings.EXPECT().GetDecayCandidates(gomock.Any(), gomock.Any()).Return(candidates, nil)
	gomock.InOrder(
		rankings.EXPECT().Update(gomock.Any(), candidates[0]).Return(nil),
		rankings.EXPECT().Update(gomock.Any(), candidates[1]).Return(errors.New("row locked")),
		rankings.EXPECT().Update(gomock.Any(), candidates[2]).Return(nil),
	)

	decayed, err := s.ApplyDecay(context.Background())
	if err != nil {
		t.Fatalf("ApplyDecay() error = %v", err)
	}
	if decayed != 2 {
		t.Errorf("ApplyDecay() = %d, want 2 with one record skipped", decayed)
	}
}

func TestDecayScoreRounding(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1000, 950},
		{100, 95},
		{10, 10}, // 9.5 rounds up
		{1, 1},
		{0, 0},
	}
	for _, tt := range tests {
		if got := decayScore(tt.score, 0.95); got != tt.want {
			t.Errorf("decayScore(%d, 0.95) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
