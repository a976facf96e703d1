package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Tier string

const (
	TierBronze    Tier = "bronze"
	TierSilver    Tier = "silver"
	TierGold      Tier = "gold"
	TierPlatinum  Tier = "platinum"
	TierDiamond   Tier = "diamond"
	TierLegendary Tier = "legendary"
)

// CategoryScores holds the five weighted sub-scores that sum to the total.
type CategoryScores struct {
	Trading    int `json:"trading"`
	Reputation int `json:"reputation"`
	Community  int `json:"community"`
	Activity   int `json:"activity"`
	Quality    int `json:"quality"`
}

// RankingStats is the snapshot of the raw counts that produced the scores.
// Persisted as JSONB next to the scores so the profile page never re-queries
// the activity stores.
type RankingStats struct {
	CompletedTransactions   int     `json:"completedTransactions"`
	AverageRating           float64 `json:"averageRating"`
	TotalReviews            int     `json:"totalReviews"`
	PositiveReviews         int     `json:"positiveReviews"`
	DetailedReviewsReceived int     `json:"detailedReviewsReceived"`
	ConversationsStarted    int     `json:"conversationsStarted"`
	ActiveConversations     int     `json:"activeConversations"`
	TotalMessages           int     `json:"totalMessages"`
	LoginStreakDays         int     `json:"loginStreakDays"`
	BooksAdded              int     `json:"booksAdded"`
	WishlistSize            int     `json:"wishlistSize"`
	AchievementPoints       int     `json:"achievementPoints"`
	CompletionRate          float64 `json:"completionRate"`
	ProfileComplete         bool    `json:"profileComplete"`
}

// UserRanking is the one record per user owned and mutated exclusively by the
// ranking engine. Rank 0 means "not yet ranked".
type UserRanking struct {
	bun.BaseModel `bun:"table:user_rankings,alias:ur"`

	ID         int64 `bun:"id,pk,autoincrement"`
	UserID     int64 `bun:"user_id,notnull,unique"`
	TotalScore int   `bun:"total_score,notnull,default:0"`

	TradingScore    int `bun:"trading_score,notnull,default:0"`
	ReputationScore int `bun:"reputation_score,notnull,default:0"`
	CommunityScore  int `bun:"community_score,notnull,default:0"`
	ActivityScore   int `bun:"activity_score,notnull,default:0"`
	QualityScore    int `bun:"quality_score,notnull,default:0"`

	Rank         int  `bun:"rank,notnull,default:0"`
	PreviousRank int  `bun:"previous_rank,notnull,default:0"`
	Tier         Tier `bun:"tier,notnull,default:'bronze'"`

	Stats RankingStats `bun:"stats,type:jsonb"`

	WeeklyExchanges int `bun:"weekly_exchanges,notnull,default:0"`
	WeeklyReviews   int `bun:"weekly_reviews,notnull,default:0"`

	LastActivity   time.Time `bun:"last_activity,notnull,default:current_timestamp"`
	LastCalculated time.Time `bun:"last_calculated,notnull,default:current_timestamp"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt      time.Time `bun:"updated_at,notnull"`
}

// Scores bundles the per-category columns.
func (r *UserRanking) Scores() CategoryScores {
	return CategoryScores{
		Trading:    r.TradingScore,
		Reputation: r.ReputationScore,
		Community:  r.CommunityScore,
		Activity:   r.ActivityScore,
		Quality:    r.QualityScore,
	}
}
