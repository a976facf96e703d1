package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/uptrace/bun"
)

type RankingRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserRanking, error)
	GetByUserIDs(ctx context.Context, userIDs []int64) ([]*models.UserRanking, error)
	// Upsert writes a freshly computed record keyed by user id, creating it
	// transparently on first computation. Rank columns and weekly counters
	// are left untouched on update.
	Upsert(ctx context.Context, ranking *models.UserRanking) error
	// GetAllOrdered returns every record ordered by total score descending,
	// user id ascending as the stable tie-break.
	GetAllOrdered(ctx context.Context) ([]*models.UserRanking, error)
	UpdateRank(ctx context.Context, userID int64, rank, previousRank int) error
	Update(ctx context.Context, ranking *models.UserRanking) error
	GetDecayCandidates(ctx context.Context, inactiveSince time.Time) ([]*models.UserRanking, error)
	ResetWeeklyCounters(ctx context.Context) error
	// The event writes below upsert: a user with no ranking record yet gets
	// a zero-score row so early activity is never dropped.
	IncrementWeeklyExchanges(ctx context.Context, userID int64) error
	IncrementWeeklyReviews(ctx context.Context, userID int64) error
	TouchActivity(ctx context.Context, userID int64) error
	GetLeaderboard(ctx context.Context, limit, offset int) ([]*models.UserRanking, error)
}

type rankingRepository struct {
	db *bun.DB
}

func NewRankingRepository(db *bun.DB) RankingRepository {
	return &rankingRepository{db: db}
}

func (r *rankingRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserRanking, error) {
	ranking := new(models.UserRanking)
	err := r.db.NewSelect().
		Model(ranking).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ranking, nil
}

func (r *rankingRepository) GetByUserIDs(ctx context.Context, userIDs []int64) ([]*models.UserRanking, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rankings []*models.UserRanking
	err := r.db.NewSelect().
		Model(&rankings).
		Where("user_id IN (?)", bun.In(userIDs)).
		Scan(ctx)
	return rankings, err
}

func (r *rankingRepository) Upsert(ctx context.Context, ranking *models.UserRanking) error {
	ranking.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(ranking).
		On("CONFLICT (user_id) DO UPDATE").
		Set("total_score = EXCLUDED.total_score").
		Set("trading_score = EXCLUDED.trading_score").
		Set("reputation_score = EXCLUDED.reputation_score").
		Set("community_score = EXCLUDED.community_score").
		Set("activity_score = EXCLUDED.activity_score").
		Set("quality_score = EXCLUDED.quality_score").
		Set("tier = EXCLUDED.tier").
		Set("stats = EXCLUDED.stats").
		Set("last_activity = EXCLUDED.last_activity").
		Set("last_calculated = EXCLUDED.last_calculated").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *rankingRepository) GetAllOrdered(ctx context.Context) ([]*models.UserRanking, error) {
	var rankings []*models.UserRanking
	err := r.db.NewSelect().
		Model(&rankings).
		Order("total_score DESC", "user_id ASC").
		Scan(ctx)
	return rankings, err
}

func (r *rankingRepository) UpdateRank(ctx context.Context, userID int64, rank, previousRank int) error {
	_, err := r.db.NewUpdate().
		Model((*models.UserRanking)(nil)).
		Set("rank = ?", rank).
		Set("previous_rank = ?", previousRank).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ?", userID).
		Exec(ctx)
	return err
}

func (r *rankingRepository) Update(ctx context.Context, ranking *models.UserRanking) error {
	ranking.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(ranking).
		WherePK().
		Exec(ctx)
	return err
}

func (r *rankingRepository) GetDecayCandidates(ctx context.Context, inactiveSince time.Time) ([]*models.UserRanking, error) {
	var rankings []*models.UserRanking
	err := r.db.NewSelect().
		Model(&rankings).
		Where("last_activity < ?", inactiveSince).
		Where("total_score > 0").
		Scan(ctx)
	return rankings, err
}

func (r *rankingRepository) ResetWeeklyCounters(ctx context.Context) error {
	_, err := r.db.NewUpdate().
		Model((*models.UserRanking)(nil)).
		Set("weekly_exchanges = 0").
		Set("weekly_reviews = 0").
		Set("updated_at = ?", time.Now()).
		Where("1 = 1").
		Exec(ctx)
	return err
}

// Event writes upsert so activity arriving before the first score
// computation seeds a zero-score record instead of vanishing.

func (r *rankingRepository) IncrementWeeklyExchanges(ctx context.Context, userID int64) error {
	ranking := newEventRecord(userID)
	ranking.WeeklyExchanges = 1
	_, err := r.db.NewInsert().
		Model(ranking).
		On("CONFLICT (user_id) DO UPDATE").
		Set("weekly_exchanges = ur.weekly_exchanges + 1").
		Set("last_activity = EXCLUDED.last_activity").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *rankingRepository) IncrementWeeklyReviews(ctx context.Context, userID int64) error {
	ranking := newEventRecord(userID)
	ranking.WeeklyReviews = 1
	_, err := r.db.NewInsert().
		Model(ranking).
		On("CONFLICT (user_id) DO UPDATE").
		Set("weekly_reviews = ur.weekly_reviews + 1").
		Set("last_activity = EXCLUDED.last_activity").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *rankingRepository) TouchActivity(ctx context.Context, userID int64) error {
	_, err := r.db.NewInsert().
		Model(newEventRecord(userID)).
		On("CONFLICT (user_id) DO UPDATE").
		Set("last_activity = EXCLUDED.last_activity").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// newEventRecord is the zero-score row inserted when an event beats the
// first calculation to the table.
func newEventRecord(userID int64) *models.UserRanking {
	now := time.Now()
	return &models.UserRanking{
		UserID:         userID,
		Tier:           models.TierBronze,
		LastActivity:   now,
		LastCalculated: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (r *rankingRepository) GetLeaderboard(ctx context.Context, limit, offset int) ([]*models.UserRanking, error) {
	var rankings []*models.UserRanking
	err := r.db.NewSelect().
		Model(&rankings).
		Order("total_score DESC", "user_id ASC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	return rankings, err
}
