package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// ApplyDecay discounts the scores of every user inactive beyond the
// configured threshold and re-derives their tier. Ranks are left alone; the
// next recalculation picks the new ordering up. Per-record failures are
// logged and skipped. Returns the number of records decayed.
func (s *Service) ApplyDecay(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.config.InactivityThreshold)

	candidates, err := s.rankings.GetDecayCandidates(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("select decay candidates: %w", err)
	}

	decayed := 0
	for _, ranking := range candidates {
		ranking.TotalScore = decayScore(ranking.TotalScore, s.config.DecayFactor)
		ranking.TradingScore = decayScore(ranking.TradingScore, s.config.DecayFactor)
		ranking.ReputationScore = decayScore(ranking.ReputationScore, s.config.DecayFactor)
		ranking.CommunityScore = decayScore(ranking.CommunityScore, s.config.DecayFactor)
		ranking.ActivityScore = decayScore(ranking.ActivityScore, s.config.DecayFactor)
		ranking.QualityScore = decayScore(ranking.QualityScore, s.config.DecayFactor)
		ranking.Tier = TierFor(ranking.TotalScore)

		if err := s.rankings.Update(ctx, ranking); err != nil {
			slog.Warn("Skipping record in decay batch",
				slog.String("type", "job"),
				slog.Int64("user_id", ranking.UserID),
				slog.Any("error", err))
			continue
		}
		decayed++
	}

	slog.Info("Decay applied",
		slog.String("type", "job"),
		slog.Int("candidates", len(candidates)),
		slog.Int("decayed", decayed))

	return decayed, nil
}

func decayScore(score int, factor float64) int {
	return int(math.Round(float64(score) * factor))
}
