package repositories

import (
	"context"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/uptrace/bun"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByRatedID(ctx context.Context, userID int64) ([]*models.Review, error)
}

type reviewRepository struct {
	db *bun.DB
}

func NewReviewRepository(db *bun.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.CreatedAt = time.Now()
	_, err := r.db.NewInsert().Model(review).Exec(ctx)
	return err
}

func (r *reviewRepository) GetByRatedID(ctx context.Context, userID int64) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.NewSelect().
		Model(&reviews).
		Where("rated_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	return reviews, err
}
