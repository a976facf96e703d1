package ranking

import (
	"context"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

// The engine reads activity facts through these narrow store interfaces.
// The repositories package satisfies all of them; tests substitute mocks.

type ExchangeStore interface {
	CountCompletedInvolving(ctx context.Context, userID int64) (int, error)
	CountRejectedNonEmpty(ctx context.Context, userID int64) (int, error)
	CountInitiated(ctx context.Context, userID int64) (total int, completed int, err error)
}

type ReviewStore interface {
	GetByRatedID(ctx context.Context, userID int64) ([]*models.Review, error)
}

type ConversationStore interface {
	GetByParticipant(ctx context.Context, userID int64) ([]*models.Conversation, error)
}

type BookStore interface {
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
}

type WishlistStore interface {
	CountByUserID(ctx context.Context, userID int64) (int, error)
}

type AchievementStore interface {
	SumPoints(ctx context.Context, userID int64) (int, error)
	Grant(ctx context.Context, userID int64, achievementID string) error
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAllIDs(ctx context.Context) ([]int64, error)
}

// RankingStore is the persistence surface for the engine-owned records.
type RankingStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserRanking, error)
	Upsert(ctx context.Context, ranking *models.UserRanking) error
	GetAllOrdered(ctx context.Context) ([]*models.UserRanking, error)
	UpdateRank(ctx context.Context, userID int64, rank, previousRank int) error
	Update(ctx context.Context, ranking *models.UserRanking) error
	GetDecayCandidates(ctx context.Context, inactiveSince time.Time) ([]*models.UserRanking, error)
	ResetWeeklyCounters(ctx context.Context) error
	IncrementWeeklyExchanges(ctx context.Context, userID int64) error
	IncrementWeeklyReviews(ctx context.Context, userID int64) error
	TouchActivity(ctx context.Context, userID int64) error
	GetLeaderboard(ctx context.Context, limit, offset int) ([]*models.UserRanking, error)
}
