package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	// RankOneAchievementID is granted to the leaderboard leader after every
	// recalculation. The grant is idempotent.
	RankOneAchievementID = "best_of_the_best"

	maxConcurrentUpdates = 8
)

// Service owns the user_rankings records: score upserts, full-population
// re-ranking, decay, weekly counters and the comparison read surface.
type Service struct {
	calculator   *Calculator
	rankings     RankingStore
	users        UserStore
	achievements AchievementStore
	config       *Config
	sem          *semaphore.Weighted
}

func NewService(calculator *Calculator, rankings RankingStore, users UserStore, achievements AchievementStore, config *Config) *Service {
	return &Service{
		calculator:   calculator,
		rankings:     rankings,
		users:        users,
		achievements: achievements,
		config:       config,
		sem:          semaphore.NewWeighted(maxConcurrentUpdates),
	}
}

// UpdateUserScore recomputes one user's score and upserts the ranking
// record. It does NOT touch ranks; pair it with RecalculateRankings, or let
// the scheduler's debounced re-rank pick it up.
func (s *Service) UpdateUserScore(ctx context.Context, userID int64) (*models.UserRanking, error) {
	result, err := s.calculator.Calculate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("calculate score for user %d: %w", userID, err)
	}

	now := time.Now()
	ranking := &models.UserRanking{
		UserID:          userID,
		TotalScore:      result.TotalScore,
		TradingScore:    result.Scores.Trading,
		ReputationScore: result.Scores.Reputation,
		CommunityScore:  result.Scores.Community,
		ActivityScore:   result.Scores.Activity,
		QualityScore:    result.Scores.Quality,
		Tier:            TierFor(result.TotalScore),
		Stats:           result.Stats,
		LastActivity:    now,
		LastCalculated:  now,
	}

	if err := s.rankings.Upsert(ctx, ranking); err != nil {
		return nil, fmt.Errorf("upsert ranking for user %d: %w", userID, err)
	}

	slog.Debug("User score updated",
		slog.Int64("user_id", userID),
		slog.Int("total_score", result.TotalScore),
		slog.String("tier", string(ranking.Tier)))

	return ranking, nil
}

// UpdateAllUsers recomputes every known user with bounded concurrency, then
// runs a single recalculation over the refreshed population. Per-user
// failures are logged and skipped; the successful count is returned.
func (s *Service) UpdateAllUsers(ctx context.Context) (int, error) {
	userIDs, err := s.users.GetAllIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	start := time.Now()
	var updated int32

	g, gctx := errgroup.WithContext(ctx)
	for _, userID := range userIDs {
		userID := userID
		if err := s.sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer s.sem.Release(1)
			if _, err := s.UpdateUserScore(gctx, userID); err != nil {
				slog.Warn("Skipping user in batch update",
					slog.String("type", "job"),
					slog.Int64("user_id", userID),
					slog.Any("error", err))
				return nil
			}
			atomic.AddInt32(&updated, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(updated), err
	}

	if err := s.RecalculateRankings(ctx); err != nil {
		return int(updated), err
	}

	slog.Info("Batch score update finished",
		slog.String("type", "job"),
		slog.Int("users", len(userIDs)),
		slog.Int("updated", int(updated)),
		slog.Duration("took", time.Since(start)))

	return int(updated), nil
}

// RecalculateRankings sorts every record by total score descending and
// assigns dense ranks 1..N, preserving each record's old rank as
// previousRank. The leaderboard leader gets the rank-1 achievement;
// that grant is best-effort and never fails the recalculation.
func (s *Service) RecalculateRankings(ctx context.Context) error {
	rankings, err := s.rankings.GetAllOrdered(ctx)
	if err != nil {
		return fmt.Errorf("load rankings: %w", err)
	}

	for i, ranking := range rankings {
		newRank := i + 1
		if err := s.rankings.UpdateRank(ctx, ranking.UserID, newRank, ranking.Rank); err != nil {
			return fmt.Errorf("update rank for user %d: %w", ranking.UserID, err)
		}
	}

	if len(rankings) > 0 {
		leader := rankings[0]
		if err := s.achievements.Grant(ctx, leader.UserID, RankOneAchievementID); err != nil {
			slog.Warn("Failed to grant rank-1 achievement",
				slog.Int64("user_id", leader.UserID),
				slog.Any("error", err))
		}
	}

	slog.Debug("Rankings recalculated", slog.Int("records", len(rankings)))
	return nil
}

// ResetWeeklyCounters zeroes the weekly exchange/review counters for every
// record. Independent of score computation.
func (s *Service) ResetWeeklyCounters(ctx context.Context) error {
	if err := s.rankings.ResetWeeklyCounters(ctx); err != nil {
		return fmt.Errorf("reset weekly counters: %w", err)
	}
	slog.Info("Weekly counters reset", slog.String("type", "job"))
	return nil
}

// RecordExchangeActivity bumps the weekly exchange counter and last-activity
// timestamp without recomputing the score.
func (s *Service) RecordExchangeActivity(ctx context.Context, userID int64) error {
	return s.rankings.IncrementWeeklyExchanges(ctx, userID)
}

// RecordReviewActivity bumps the weekly review counter and last-activity
// timestamp without recomputing the score.
func (s *Service) RecordReviewActivity(ctx context.Context, userID int64) error {
	return s.rankings.IncrementWeeklyReviews(ctx, userID)
}

// RecordActivityPing refreshes the last-activity timestamp so the decay job
// keeps treating the user as active.
func (s *Service) RecordActivityPing(ctx context.Context, userID int64) error {
	return s.rankings.TouchActivity(ctx, userID)
}

// GetRanking returns one user's record, nil when none exists yet.
func (s *Service) GetRanking(ctx context.Context, userID int64) (*models.UserRanking, error) {
	return s.rankings.GetByUserID(ctx, userID)
}

// GetLeaderboard returns a page of records in rank order.
func (s *Service) GetLeaderboard(ctx context.Context, limit, offset int) ([]*models.UserRanking, error) {
	if limit <= 0 {
		limit = 25
	}
	return s.rankings.GetLeaderboard(ctx, limit, offset)
}

// Comparison is the side-by-side view of two users' records.
type Comparison struct {
	UserA        *models.UserRanking   `json:"userA"`
	UserB        *models.UserRanking   `json:"userB"`
	ScoreDiff    int                   `json:"scoreDiff"`
	RankDiff     int                   `json:"rankDiff"`
	CategoryDiff models.CategoryScores `json:"categoryDiff"`
}

// CompareUsers builds a comparison of two ranking records. A missing record
// on either side yields a nil comparison, not an error.
func (s *Service) CompareUsers(ctx context.Context, userA, userB int64) (*Comparison, error) {
	a, err := s.rankings.GetByUserID(ctx, userA)
	if err != nil {
		return nil, err
	}
	b, err := s.rankings.GetByUserID(ctx, userB)
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}

	return &Comparison{
		UserA:     a,
		UserB:     b,
		ScoreDiff: a.TotalScore - b.TotalScore,
		RankDiff:  a.Rank - b.Rank,
		CategoryDiff: models.CategoryScores{
			Trading:    a.TradingScore - b.TradingScore,
			Reputation: a.ReputationScore - b.ReputationScore,
			Community:  a.CommunityScore - b.CommunityScore,
			Activity:   a.ActivityScore - b.ActivityScore,
			Quality:    a.QualityScore - b.QualityScore,
		},
	}, nil
}
