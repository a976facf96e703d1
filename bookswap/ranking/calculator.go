package ranking

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

// Result is the outcome of one full score computation for a user.
type Result struct {
	TotalScore int
	Scores     models.CategoryScores
	Stats      models.RankingStats
}

// Calculator turns raw activity facts into the five category scores and the
// weighted total. It only reads; persisting the result is the service's job.
type Calculator struct {
	config        *Config
	exchanges     ExchangeStore
	reviews       ReviewStore
	conversations ConversationStore
	books         BookStore
	wishlists     WishlistStore
	achievements  AchievementStore
	users         UserStore
}

func NewCalculator(
	config *Config,
	exchanges ExchangeStore,
	reviews ReviewStore,
	conversations ConversationStore,
	books BookStore,
	wishlists WishlistStore,
	achievements AchievementStore,
	users UserStore,
) *Calculator {
	return &Calculator{
		config:        config,
		exchanges:     exchanges,
		reviews:       reviews,
		conversations: conversations,
		books:         books,
		wishlists:     wishlists,
		achievements:  achievements,
		users:         users,
	}
}

// Calculate runs all five category scorers, applies the weights and merges
// the stats snapshot. Each weighted term is rounded before summation.
func (c *Calculator) Calculate(ctx context.Context, userID int64) (*Result, error) {
	var stats models.RankingStats

	trading, err := c.ScoreTrading(ctx, userID, &stats)
	if err != nil {
		return nil, fmt.Errorf("trading score: %w", err)
	}
	reputation, err := c.ScoreReputation(ctx, userID, &stats)
	if err != nil {
		return nil, fmt.Errorf("reputation score: %w", err)
	}
	community, err := c.ScoreCommunity(ctx, userID, &stats)
	if err != nil {
		return nil, fmt.Errorf("community score: %w", err)
	}
	activity, err := c.ScoreActivity(ctx, userID, &stats)
	if err != nil {
		return nil, fmt.Errorf("activity score: %w", err)
	}
	quality, err := c.ScoreQuality(ctx, userID, &stats)
	if err != nil {
		return nil, fmt.Errorf("quality score: %w", err)
	}

	w := c.config.Weights
	total := weighted(trading, w.Trading) +
		weighted(reputation, w.Reputation) +
		weighted(community, w.Community) +
		weighted(activity, w.Activity) +
		weighted(quality, w.Quality)

	return &Result{
		TotalScore: total,
		Scores: models.CategoryScores{
			Trading:    trading,
			Reputation: reputation,
			Community:  community,
			Activity:   activity,
			Quality:    quality,
		},
		Stats: stats,
	}, nil
}

func weighted(score int, weight float64) int {
	return int(math.Round(float64(score) * weight))
}

// ScoreTrading awards points per completed exchange and deducts a penalty
// for every exchange the user rejected while the offer was non-empty.
// Rejecting a giveaway request costs nothing. Never negative.
func (c *Calculator) ScoreTrading(ctx context.Context, userID int64, stats *models.RankingStats) (int, error) {
	completed, err := c.exchanges.CountCompletedInvolving(ctx, userID)
	if err != nil {
		return 0, err
	}
	rejected, err := c.exchanges.CountRejectedNonEmpty(ctx, userID)
	if err != nil {
		return 0, err
	}

	score := completed*c.config.CompletedExchangePoints - rejected*c.config.RejectedExchangePenalty
	if score < 0 {
		score = 0
	}

	stats.CompletedTransactions = completed
	return score, nil
}

// ScoreReputation scores the reviews the user received: a bonus per positive
// rating, a bonus per detailed comment, plus the average rating scaled up.
func (c *Calculator) ScoreReputation(ctx context.Context, userID int64, stats *models.RankingStats) (int, error) {
	reviews, err := c.reviews.GetByRatedID(ctx, userID)
	if err != nil {
		return 0, err
	}

	var base, positive, detailed, ratingSum int
	for _, review := range reviews {
		ratingSum += review.Rating
		if review.Rating >= c.config.PositiveRatingThreshold {
			base += c.config.PositiveReviewPoints
			positive++
		}
		// Character count, not bytes; comments arrive in any script.
		if utf8.RuneCountInString(review.Comment) >= c.config.DetailedCommentMinLen {
			base += c.config.DetailedReviewPoints
			detailed++
		}
	}

	var average float64
	if len(reviews) > 0 {
		average = float64(ratingSum) / float64(len(reviews))
	}

	stats.AverageRating = average
	stats.TotalReviews = len(reviews)
	stats.PositiveReviews = positive
	stats.DetailedReviewsReceived = detailed

	return int(math.Round(float64(base) + average*c.config.AverageRatingMultiplier)), nil
}

// ScoreCommunity scores messaging engagement: capped points per active
// conversation plus capped points per message.
func (c *Calculator) ScoreCommunity(ctx context.Context, userID int64, stats *models.RankingStats) (int, error) {
	conversations, err := c.conversations.GetByParticipant(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(conversations) == 0 {
		return 0, nil
	}

	var active, totalMessages, started int
	for _, conv := range conversations {
		totalMessages += conv.MessageCount
		if conv.MessageCount > c.config.ActiveMessageThreshold {
			active++
		}
		if conv.StartedByID == userID {
			started++
		}
	}

	score := min(active*c.config.ActiveConversationPoints, c.config.ActiveConversationCap) +
		min(totalMessages*c.config.MessagePoints, c.config.MessagePointsCap)

	stats.ConversationsStarted = started
	stats.ActiveConversations = active
	stats.TotalMessages = totalMessages

	return score, nil
}

// ScoreActivity scores presence: login streak (capped), books listed,
// wishlist size and a one-time bonus for a complete profile.
func (c *Calculator) ScoreActivity(ctx context.Context, userID int64, stats *models.RankingStats) (int, error) {
	user, err := c.users.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, fmt.Errorf("user %d not found", userID)
	}

	booksAdded, err := c.books.CountByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}
	wishlistSize, err := c.wishlists.CountByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	score := min(user.LoginStreakDays*c.config.LoginStreakPoints, c.config.LoginStreakPointsCap) +
		booksAdded*c.config.BookAddedPoints +
		wishlistSize*c.config.WishlistItemPoints
	if user.ProfileComplete() {
		score += c.config.CompleteProfileBonus
	}

	stats.LoginStreakDays = user.LoginStreakDays
	stats.BooksAdded = booksAdded
	stats.WishlistSize = wishlistSize
	stats.ProfileComplete = user.ProfileComplete()

	return score, nil
}

// ScoreQuality scores achievement points (halved) plus the completion rate
// of exchanges the user initiated, scaled up. Zero initiated means zero rate.
func (c *Calculator) ScoreQuality(ctx context.Context, userID int64, stats *models.RankingStats) (int, error) {
	points, err := c.achievements.SumPoints(ctx, userID)
	if err != nil {
		return 0, err
	}
	total, completed, err := c.exchanges.CountInitiated(ctx, userID)
	if err != nil {
		return 0, err
	}

	var completionRate float64
	if total > 0 {
		completionRate = float64(completed) / float64(total)
	}

	stats.AchievementPoints = points
	stats.CompletionRate = completionRate

	return int(math.Round(float64(points)*c.config.AchievementPointsFactor +
		completionRate*c.config.CompletionRateMultiplier)), nil
}
