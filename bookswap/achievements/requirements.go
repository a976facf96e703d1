package achievements

import (
	"fmt"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

// RequirementKind is the closed set of conditions an achievement can declare.
// Each catalog row carries exactly one kind and a numeric target; adding a new
// unlock condition means adding a kind here and a case in Evaluate.
type RequirementKind string

const (
	KindExchangesCompleted RequirementKind = "exchanges_completed"
	KindReviewsReceived    RequirementKind = "reviews_received"
	KindBooksAdded         RequirementKind = "books_added"
	KindLoginStreak        RequirementKind = "login_streak"
	KindRankReached        RequirementKind = "rank_reached"
)

// Progress is the per-user snapshot the requirement kinds are evaluated
// against. It mirrors the counters the ranking engine already maintains.
type Progress struct {
	ExchangesCompleted int
	ReviewsReceived    int
	BooksAdded         int
	LoginStreakDays    int
	Rank               int
}

// ProgressFromRanking builds a Progress snapshot from a ranking record.
func ProgressFromRanking(r *models.UserRanking) Progress {
	return Progress{
		ExchangesCompleted: r.Stats.CompletedTransactions,
		ReviewsReceived:    r.Stats.TotalReviews,
		BooksAdded:         r.Stats.BooksAdded,
		LoginStreakDays:    r.Stats.LoginStreakDays,
		Rank:               r.Rank,
	}
}

// Evaluate reports whether the progress snapshot satisfies the achievement's
// requirement. Unknown kinds are an error, not a silent false, so a bad
// catalog row surfaces immediately.
func Evaluate(a *models.Achievement, p Progress) (bool, error) {
	switch RequirementKind(a.RequirementKind) {
	case KindExchangesCompleted:
		return p.ExchangesCompleted >= a.RequirementN, nil
	case KindReviewsReceived:
		return p.ReviewsReceived >= a.RequirementN, nil
	case KindBooksAdded:
		return p.BooksAdded >= a.RequirementN, nil
	case KindLoginStreak:
		return p.LoginStreakDays >= a.RequirementN, nil
	case KindRankReached:
		// Rank 0 means unranked; "reach rank N" wants 1 <= rank <= N.
		return p.Rank > 0 && p.Rank <= a.RequirementN, nil
	default:
		return false, fmt.Errorf("unknown requirement kind %q on achievement %s", a.RequirementKind, a.ID)
	}
}
