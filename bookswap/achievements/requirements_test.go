package achievements

import (
	"testing"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

func catalogEntry(id, kind string, n int) *models.Achievement {
	return &models.Achievement{ID: id, RequirementKind: kind, RequirementN: n}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		achievement *models.Achievement
		progress    Progress
		want        bool
	}{
		{
			name:        "exchanges below target",
			achievement: catalogEntry("trusted_trader", "exchanges_completed", 10),
			progress:    Progress{ExchangesCompleted: 9},
			want:        false,
		},
		{
			name:        "exchanges at target",
			achievement: catalogEntry("trusted_trader", "exchanges_completed", 10),
			progress:    Progress{ExchangesCompleted: 10},
			want:        true,
		},
		{
			name:        "reviews past target",
			achievement: catalogEntry("well_reviewed", "reviews_received", 5),
			progress:    Progress{ReviewsReceived: 8},
			want:        true,
		},
		{
			name:        "books at target",
			achievement: catalogEntry("shelf_starter", "books_added", 5),
			progress:    Progress{BooksAdded: 5},
			want:        true,
		},
		{
			name:        "login streak below target",
			achievement: catalogEntry("regular_visitor", "login_streak", 7),
			progress:    Progress{LoginStreakDays: 6},
			want:        false,
		},
		{
			name:        "rank one reached",
			achievement: catalogEntry("best_of_the_best", "rank_reached", 1),
			progress:    Progress{Rank: 1},
			want:        true,
		},
		{
			name:        "rank two misses rank-one target",
			achievement: catalogEntry("best_of_the_best", "rank_reached", 1),
			progress:    Progress{Rank: 2},
			want:        false,
		},
		{
			name:        "unranked never reaches a rank target",
			achievement: catalogEntry("best_of_the_best", "rank_reached", 1),
			progress:    Progress{Rank: 0},
			want:        false,
		},
		{
			name:        "top ten target includes rank three",
			achievement: catalogEntry("top_ten", "rank_reached", 10),
			progress:    Progress{Rank: 3},
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.achievement, tt.progress)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateUnknownKind(t *testing.T) {
	if _, err := Evaluate(catalogEntry("mystery", "coffee_consumed", 3), Progress{}); err == nil {
		t.Error("Evaluate() expected error for unknown requirement kind")
	}
}

func TestProgressFromRanking(t *testing.T) {
	ranking := &models.UserRanking{
		Rank: 4,
		Stats: models.RankingStats{
			CompletedTransactions: 12,
			TotalReviews:          7,
			BooksAdded:            3,
			LoginStreakDays:       9,
		},
	}

	got := ProgressFromRanking(ranking)
	want := Progress{
		ExchangesCompleted: 12,
		ReviewsReceived:    7,
		BooksAdded:         3,
		LoginStreakDays:    9,
		Rank:               4,
	}
	if got != want {
		t.Errorf("ProgressFromRanking() = %+v, want %+v", got, want)
	}
}
