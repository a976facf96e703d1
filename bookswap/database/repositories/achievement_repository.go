package repositories

import (
	"context"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/uptrace/bun"
)

type AchievementRepository interface {
	GetAll(ctx context.Context) ([]*models.Achievement, error)
	GetUnlockedByUserID(ctx context.Context, userID int64) ([]*models.UserAchievement, error)
	SumPoints(ctx context.Context, userID int64) (int, error)
	// Grant unlocks an achievement for a user. Granting an already-unlocked
	// achievement is a no-op.
	Grant(ctx context.Context, userID int64, achievementID string) error
}

type achievementRepository struct {
	db *bun.DB
}

func NewAchievementRepository(db *bun.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) GetAll(ctx context.Context) ([]*models.Achievement, error) {
	var achievements []*models.Achievement
	err := r.db.NewSelect().
		Model(&achievements).
		Order("id ASC").
		Scan(ctx)
	return achievements, err
}

func (r *achievementRepository) GetUnlockedByUserID(ctx context.Context, userID int64) ([]*models.UserAchievement, error) {
	var unlocks []*models.UserAchievement
	err := r.db.NewSelect().
		Model(&unlocks).
		Relation("Achievement").
		Where("ua.user_id = ?", userID).
		Scan(ctx)
	return unlocks, err
}

func (r *achievementRepository) SumPoints(ctx context.Context, userID int64) (int, error) {
	var points int
	err := r.db.NewSelect().
		ColumnExpr("COALESCE(SUM(a.points), 0)").
		TableExpr("user_achievements AS ua").
		Join("JOIN achievements AS a ON a.id = ua.achievement_id").
		Where("ua.user_id = ?", userID).
		Scan(ctx, &points)
	return points, err
}

func (r *achievementRepository) Grant(ctx context.Context, userID int64, achievementID string) error {
	unlock := &models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(unlock).
		On("CONFLICT (user_id, achievement_id) DO NOTHING").
		Exec(ctx)
	return err
}
