package ranking

import (
	"context"
	"strings"
	"testing"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/bookswap/bookswap/bookswap/ranking/mock"
	"go.uber.org/mock/gomock"
)

type calculatorMocks struct {
	exchanges     *mock.MockExchangeStore
	reviews       *mock.MockReviewStore
	conversations *mock.MockConversationStore
	books         *mock.MockBookStore
	wishlists     *mock.MockWishlistStore
	achievements  *mock.MockAchievementStore
	users         *mock.MockUserStore
}

func newCalculatorMocks(t *testing.T) (*Calculator, calculatorMocks) {
	ctrl := gomock.NewController(t)
	m := calculatorMocks{
		exchanges:     mock.NewMockExchangeStore(ctrl),
		reviews:       mock.NewMockReviewStore(ctrl),
		conversations: mock.NewMockConversationStore(ctrl),
		books:         mock.NewMockBookStore(ctrl),
		wishlists:     mock.NewMockWishlistStore(ctrl),
		achievements:  mock.NewMockAchievementStore(ctrl),
		users:         mock.NewMockUserStore(ctrl),
	}
	c := NewCalculator(
		NewDefaultConfig(),
		m.exchanges,
		m.reviews,
		m.conversations,
		m.books,
		m.wishlists,
		m.achievements,
		m.users,
	)
	return c, m
}

func TestScoreTrading(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		rejected  int
		want      int
	}{
		{"no activity", 0, 0, 0},
		{"completed only", 4, 0, 200},
		{"penalty applies", 4, 1, 150},
		{"penalty floors at zero", 1, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newCalculatorMocks(t)
			m.exchanges.EXPECT().CountCompletedInvolving(gomock.Any(), int64(1)).Return(tt.completed, nil)
			m.exchanges.EXPECT().CountRejectedNonEmpty(gomock.Any(), int64(1)).Return(tt.rejected, nil)

			var stats models.RankingStats
			got, err := c.ScoreTrading(context.Background(), 1, &stats)
			if err != nil {
				t.Fatalf("ScoreTrading() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ScoreTrading() = %d, want %d", got, tt.want)
			}
			if stats.CompletedTransactions != tt.completed {
				t.Errorf("stats.CompletedTransactions = %d, want %d", stats.CompletedTransactions, tt.completed)
			}
		})
	}
}

func TestScoreReputation(t *testing.T) {
	// Ratings [5, 4, 3], one detailed comment: 10*2 + 25*1 + 4.0*200 = 845.
	reviews := []*models.Review{
		{Rating: 5, Comment: strings.Repeat("a", 60)},
		{Rating: 4, Comment: "short"},
		{Rating: 3},
	}

	c, m := newCalculatorMocks(t)
	m.reviews.EXPECT().GetByRatedID(gomock.Any(), int64(1)).Return(reviews, nil)

	var stats models.RankingStats
	got, err := c.ScoreReputation(context.Background(), 1, &stats)
	if err != nil {
		t.Fatalf("ScoreReputation() error = %v", err)
	}
	if got != 845 {
		t.Errorf("ScoreReputation() = %d, want 845", got)
	}
	if stats.AverageRating != 4.0 {
		t.Errorf("stats.AverageRating = %v, want 4.0", stats.AverageRating)
	}
	if stats.PositiveReviews != 2 {
		t.Errorf("stats.PositiveReviews = %d, want 2", stats.PositiveReviews)
	}
	if stats.DetailedReviewsReceived != 1 {
		t.Errorf("stats.DetailedReviewsReceived = %d, want 1", stats.DetailedReviewsReceived)
	}
}

// The detailed-comment threshold counts characters, so a multi-byte comment
// does not qualify on byte length alone.
func TestScoreReputationDetailedCommentRunes(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    int
	}{
		// 25 two-byte runes: 50 bytes but only 25 characters.
		{"multibyte below threshold", strings.Repeat("я", 25), 1010},
		// 50 two-byte runes qualify: 10 + 25 + 5.0*200.
		{"multibyte at threshold", strings.Repeat("я", 50), 1035},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newCalculatorMocks(t)
			m.reviews.EXPECT().GetByRatedID(gomock.Any(), int64(1)).
				Return([]*models.Review{{Rating: 5, Comment: tt.comment}}, nil)

			var stats models.RankingStats
			got, err := c.ScoreReputation(context.Background(), 1, &stats)
			if err != nil {
				t.Fatalf("ScoreReputation() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ScoreReputation() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreReputationNoReviews(t *testing.T) {
	c, m := newCalculatorMocks(t)
	m.reviews.EXPECT().GetByRatedID(gomock.Any(), int64(1)).Return(nil, nil)

	var stats models.RankingStats
	got, err := c.ScoreReputation(context.Background(), 1, &stats)
	if err != nil {
		t.Fatalf("ScoreReputation() error = %v", err)
	}
	if got != 0 {
		t.Errorf("ScoreReputation() = %d, want 0", got)
	}
}

func TestScoreCommunity(t *testing.T) {
	tests := []struct {
		name          string
		conversations []*models.Conversation
		want          int
		wantActive    int
		wantStarted   int
	}{
		{"no conversations", nil, 0, 0, 0},
		{
			// Two active (>2 messages) of three, nine messages total:
			// min(2*10, 500) + min(9*2, 500) = 38.
			name: "mixed activity",
			conversations: []*models.Conversation{
				{StartedByID: 1, MessageCount: 5},
				{StartedByID: 2, MessageCount: 3},
				{StartedByID: 1, MessageCount: 1},
			},
			want:        38,
			wantActive:  2,
			wantStarted: 2,
		},
		{
			// 60 active conversations and 300 messages hit both caps.
			name:          "caps apply",
			conversations: manyConversations(60, 5),
			want:          1000,
			wantActive:    60,
			wantStarted:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newCalculatorMocks(t)
			m.conversations.EXPECT().GetByParticipant(gomock.Any(), int64(1)).Return(tt.conversations, nil)

			var stats models.RankingStats
			got, err := c.ScoreCommunity(context.Background(), 1, &stats)
			if err != nil {
				t.Fatalf("ScoreCommunity() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ScoreCommunity() = %d, want %d", got, tt.want)
			}
			if stats.ActiveConversations != tt.wantActive {
				t.Errorf("stats.ActiveConversations = %d, want %d", stats.ActiveConversations, tt.wantActive)
			}
			if stats.ConversationsStarted != tt.wantStarted {
				t.Errorf("stats.ConversationsStarted = %d, want %d", stats.ConversationsStarted, tt.wantStarted)
			}
		})
	}
}

func manyConversations(n, messages int) []*models.Conversation {
	convs := make([]*models.Conversation, n)
	for i := range convs {
		convs[i] = &models.Conversation{StartedByID: 99, MessageCount: messages}
	}
	return convs
}

func TestScoreActivity(t *testing.T) {
	tests := []struct {
		name     string
		user     *models.User
		books    int
		wishlist int
		want     int
	}{
		{
			// 10*2 + 3*10 + 2*5 + 100 = 160
			name: "complete profile",
			user: &models.User{
				Username: "reader", Bio: "b", Location: "l", AvatarURL: "a",
				LoginStreakDays: 10,
			},
			books:    3,
			wishlist: 2,
			want:     160,
		},
		{
			// streak capped at 730: 730 + 10 = 740, no profile bonus
			name:  "streak cap without profile",
			user:  &models.User{Username: "reader", LoginStreakDays: 500},
			books: 1,
			want:  740,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newCalculatorMocks(t)
			m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(tt.user, nil)
			m.books.EXPECT().CountByOwner(gomock.Any(), int64(1)).Return(tt.books, nil)
			m.wishlists.EXPECT().CountByUserID(gomock.Any(), int64(1)).Return(tt.wishlist, nil)

			var stats models.RankingStats
			got, err := c.ScoreActivity(context.Background(), 1, &stats)
			if err != nil {
				t.Fatalf("ScoreActivity() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ScoreActivity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreActivityUnknownUser(t *testing.T) {
	c, m := newCalculatorMocks(t)
	m.users.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

	var stats models.RankingStats
	if _, err := c.ScoreActivity(context.Background(), 404, &stats); err == nil {
		t.Error("ScoreActivity() expected error for unknown user")
	}
}

func TestScoreQuality(t *testing.T) {
	tests := []struct {
		name      string
		points    int
		total     int
		completed int
		want      int
	}{
		{"nothing yet", 0, 0, 0, 0},
		// 100*0.5 + 0.75*300 = 275
		{"points and completion", 100, 4, 3, 275},
		// zero initiated means zero completion rate, not NaN
		{"points only", 50, 0, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newCalculatorMocks(t)
			m.achievements.EXPECT().SumPoints(gomock.Any(), int64(1)).Return(tt.points, nil)
			m.exchanges.EXPECT().CountInitiated(gomock.Any(), int64(1)).Return(tt.total, tt.completed, nil)

			var stats models.RankingStats
			got, err := c.ScoreQuality(context.Background(), 1, &stats)
			if err != nil {
				t.Fatalf("ScoreQuality() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ScoreQuality() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Each weighted term is rounded on its own before summation.
func TestCalculateWeightedTotal(t *testing.T) {
	c, m := newCalculatorMocks(t)

	// trading 200, reputation 0, community 0, activity 160, quality 275
	m.exchanges.EXPECT().CountCompletedInvolving(gomock.Any(), int64(1)).Return(4, nil)
	m.exchanges.EXPECT().CountRejectedNonEmpty(gomock.Any(), int64(1)).Return(0, nil)
	m.reviews.EXPECT().GetByRatedID(gomock.Any(), int64(1)).Return(nil, nil)
	m.conversations.EXPECT().GetByParticipant(gomock.Any(), int64(1)).Return(nil, nil)
	m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{
		Username: "reader", Bio: "b", Location: "l", AvatarURL: "a",
		LoginStreakDays: 10,
	}, nil)
	m.books.EXPECT().CountByOwner(gomock.Any(), int64(1)).Return(3, nil)
	m.wishlists.EXPECT().CountByUserID(gomock.Any(), int64(1)).Return(2, nil)
	m.achievements.EXPECT().SumPoints(gomock.Any(), int64(1)).Return(100, nil)
	m.exchanges.EXPECT().CountInitiated(gomock.Any(), int64(1)).Return(4, 3, nil)

	result, err := c.Calculate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	// round(200*0.30) + round(160*0.15) + round(275*0.10) = 60 + 24 + 28
	if result.TotalScore != 112 {
		t.Errorf("TotalScore = %d, want 112", result.TotalScore)
	}
	want := models.CategoryScores{Trading: 200, Activity: 160, Quality: 275}
	if result.Scores != want {
		t.Errorf("Scores = %+v, want %+v", result.Scores, want)
	}
}
