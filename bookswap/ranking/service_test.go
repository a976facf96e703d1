package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/bookswap/bookswap/bookswap/ranking/mock"
	"go.uber.org/mock/gomock"
)

func newServiceMocks(t *testing.T) (*Service, *mock.MockRankingStore, *mock.MockAchievementStore) {
	ctrl := gomock.NewController(t)
	rankings := mock.NewMockRankingStore(ctrl)
	achievements := mock.NewMockAchievementStore(ctrl)
	users := mock.NewMockUserStore(ctrl)
	s := NewService(nil, rankings, users, achievements, NewDefaultConfig())
	return s, rankings, achievements
}

// newScoringServiceMocks builds a Service around a real Calculator so the
// full score-to-upsert path runs against mocked stores.
func newScoringServiceMocks(t *testing.T) (*Service, calculatorMocks, *mock.MockRankingStore) {
	c, m := newCalculatorMocks(t)
	ctrl := gomock.NewController(t)
	rankings := mock.NewMockRankingStore(ctrl)
	s := NewService(c, rankings, m.users, m.achievements, NewDefaultConfig())
	return s, m, rankings
}

// expectQuietUser wires the score path for a user with the given completed
// exchange count and no other activity.
func expectQuietUser(m calculatorMocks, userID int64, completed int) {
	m.exchanges.EXPECT().CountCompletedInvolving(gomock.Any(), userID).Return(completed, nil)
	m.exchanges.EXPECT().CountRejectedNonEmpty(gomock.Any(), userID).Return(0, nil)
	m.reviews.EXPECT().GetByRatedID(gomock.Any(), userID).Return(nil, nil)
	m.conversations.EXPECT().GetByParticipant(gomock.Any(), userID).Return(nil, nil)
	m.users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID, Username: "reader"}, nil)
	m.books.EXPECT().CountByOwner(gomock.Any(), userID).Return(0, nil)
	m.wishlists.EXPECT().CountByUserID(gomock.Any(), userID).Return(0, nil)
	m.achievements.EXPECT().SumPoints(gomock.Any(), userID).Return(0, nil)
	m.exchanges.EXPECT().CountInitiated(gomock.Any(), userID).Return(0, 0, nil)
}

func TestUpdateUserScore(t *testing.T) {
	s, m, rankings := newScoringServiceMocks(t)

	// 80 completed exchanges: trading 4000, weighted round(4000*0.30) = 1200.
	expectQuietUser(m, 1, 80)
	rankings.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	record, err := s.UpdateUserScore(context.Background(), 1)
	if err != nil {
		t.Fatalf("UpdateUserScore() error = %v", err)
	}

	if record.UserID != 1 {
		t.Errorf("UserID = %d, want 1", record.UserID)
	}
	if record.TotalScore != 1200 {
		t.Errorf("TotalScore = %d, want 1200", record.TotalScore)
	}
	if record.TradingScore != 4000 {
		t.Errorf("TradingScore = %d, want 4000", record.TradingScore)
	}
	if record.Tier != models.TierSilver {
		t.Errorf("Tier = %v, want silver for 1200", record.Tier)
	}
	if record.Stats.CompletedTransactions != 80 {
		t.Errorf("Stats.CompletedTransactions = %d, want 80", record.Stats.CompletedTransactions)
	}
	if record.LastCalculated.IsZero() {
		t.Error("LastCalculated not stamped")
	}
}

func TestUpdateUserScoreCalculationFailure(t *testing.T) {
	s, m, _ := newScoringServiceMocks(t)

	m.exchanges.EXPECT().CountCompletedInvolving(gomock.Any(), int64(1)).
		Return(0, errors.New("connection reset"))

	if _, err := s.UpdateUserScore(context.Background(), 1); err == nil {
		t.Fatal("UpdateUserScore() expected error when a store fails")
	}
}

// One user failing mid-calculation is skipped; the rest of the batch and the
// single closing recalculation still run.
func TestUpdateAllUsersSkipsFailedUsers(t *testing.T) {
	s, m, rankings := newScoringServiceMocks(t)

	m.users.EXPECT().GetAllIDs(gomock.Any()).Return([]int64{1, 2}, nil)
	expectQuietUser(m, 1, 2)
	m.exchanges.EXPECT().CountCompletedInvolving(gomock.Any(), int64(2)).
		Return(0, errors.New("connection reset"))

	rankings.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *models.UserRanking) error {
			if r.UserID != 1 {
				t.Errorf("Upsert for user %d, want only user 1", r.UserID)
			}
			return nil
		})

	ordered := []*models.UserRanking{{UserID: 1, TotalScore: 30, Rank: 0}}
	rankings.EXPECT().GetAllOrdered(gomock.Any()).Return(ordered, nil)
	rankings.EXPECT().UpdateRank(gomock.Any(), int64(1), 1, 0).Return(nil)
	m.achievements.EXPECT().Grant(gomock.Any(), int64(1), RankOneAchievementID).Return(nil)

	updated, err := s.UpdateAllUsers(context.Background())
	if err != nil {
		t.Fatalf("UpdateAllUsers() error = %v", err)
	}
	if updated != 1 {
		t.Errorf("UpdateAllUsers() = %d, want 1 with the failed user skipped", updated)
	}
}

func TestRecalculateRankings(t *testing.T) {
	s, rankings, achievements := newServiceMocks(t)

	// Ordered by total score descending; old ranks carry into previousRank.
	ordered := []*models.UserRanking{
		{UserID: 7, TotalScore: 3000, Rank: 2},
		{UserID: 3, TotalScore: 2000, Rank: 1},
		{UserID: 9, TotalScore: 1000, Rank: 0},
	}

	rankings.EXPECT().GetAllOrdered(gomock.Any()).Return(ordered, nil)
	rankings.EXPECT().UpdateRank(gomock.Any(), int64(7), 1, 2).Return(nil)
	rankings.EXPECT().UpdateRank(gomock.Any(), int64(3), 2, 1).Return(nil)
	rankings.EXPECT().UpdateRank(gomock.Any(), int64(9), 3, 0).Return(nil)
	achievements.EXPECT().Grant(gomock.Any(), int64(7), RankOneAchievementID).Return(nil)

	if err := s.RecalculateRankings(context.Background()); err != nil {
		t.Fatalf("RecalculateRankings() error = %v", err)
	}
}

func TestRecalculateRankingsGrantFailureIsNonFatal(t *testing.T) {
	s, rankings, achievements := newServiceMocks(t)

	ordered := []*models.UserRanking{{UserID: 7, TotalScore: 3000, Rank: 1}}
	rankings.EXPECT().GetAllOrdered(gomock.Any()).Return(ordered, nil)
	rankings.EXPECT().UpdateRank(gomock.Any(), int64(7), 1, 1).Return(nil)
	achievements.EXPECT().Grant(gomock.Any(), int64(7), RankOneAchievementID).Return(errors.New("constraint violation"))

	if err := s.RecalculateRankings(context.Background()); err != nil {
		t.Fatalf("RecalculateRankings() error = %v, want nil despite grant failure", err)
	}
}

func TestRecalculateRankingsEmptyPopulation(t *testing.T) {
	s, rankings, _ := newServiceMocks(t)
	rankings.EXPECT().GetAllOrdered(gomock.Any()).Return(nil, nil)

	if err := s.RecalculateRankings(context.Background()); err != nil {
		t.Fatalf("RecalculateRankings() error = %v", err)
	}
}

func TestCompareUsers(t *testing.T) {
	s, rankings, _ := newServiceMocks(t)

	a := &models.UserRanking{
		UserID: 1, TotalScore: 3000, Rank: 2,
		TradingScore: 900, ReputationScore: 700, CommunityScore: 500, ActivityScore: 600, QualityScore: 300,
	}
	b := &models.UserRanking{
		UserID: 2, TotalScore: 2500, Rank: 5,
		TradingScore: 800, ReputationScore: 900, CommunityScore: 300, ActivityScore: 400, QualityScore: 100,
	}

	rankings.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(a, nil)
	rankings.EXPECT().GetByUserID(gomock.Any(), int64(2)).Return(b, nil)

	got, err := s.CompareUsers(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("CompareUsers() error = %v", err)
	}
	if got.ScoreDiff != 500 {
		t.Errorf("ScoreDiff = %d, want 500", got.ScoreDiff)
	}
	if got.RankDiff != -3 {
		t.Errorf("RankDiff = %d, want -3", got.RankDiff)
	}
	wantCategories := models.CategoryScores{Trading: 100, Reputation: -200, Community: 200, Activity: 200, Quality: 200}
	if got.CategoryDiff != wantCategories {
		t.Errorf("CategoryDiff = %+v, want %+v", got.CategoryDiff, wantCategories)
	}
}

func TestCompareUsersMissingRecord(t *testing.T) {
	s, rankings, _ := newServiceMocks(t)

	rankings.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(&models.UserRanking{UserID: 1}, nil)
	rankings.EXPECT().GetByUserID(gomock.Any(), int64(2)).Return(nil, nil)

	got, err := s.CompareUsers(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("CompareUsers() error = %v", err)
	}
	if got != nil {
		t.Errorf("CompareUsers() = %+v, want nil for missing record", got)
	}
}

func TestResetWeeklyCounters(t *testing.T) {
	s, rankings, _ := newServiceMocks(t)
	rankings.EXPECT().ResetWeeklyCounters(gomock.Any()).Return(nil)

	if err := s.ResetWeeklyCounters(context.Background()); err != nil {
		t.Fatalf("ResetWeeklyCounters() error = %v", err)
	}
}
