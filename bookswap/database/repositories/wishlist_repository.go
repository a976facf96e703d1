package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/uptrace/bun"
)

type WishlistRepository interface {
	Add(ctx context.Context, item *models.WishlistItem) error
	Remove(ctx context.Context, userID int64, title string) error
	GetByUserID(ctx context.Context, userID int64) ([]*models.WishlistItem, error)
	CountByUserID(ctx context.Context, userID int64) (int, error)
	// GetByTitle returns every wishlist entry matching the title
	// case-insensitively, across all users.
	GetByTitle(ctx context.Context, title string) ([]*models.WishlistItem, error)
}

type wishlistRepository struct {
	db *bun.DB
}

func NewWishlistRepository(db *bun.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Add(ctx context.Context, item *models.WishlistItem) error {
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(item).Exec(ctx)
	return err
}

func (r *wishlistRepository) Remove(ctx context.Context, userID int64, title string) error {
	_, err := r.db.NewDelete().
		Model((*models.WishlistItem)(nil)).
		Where("user_id = ?", userID).
		Where("LOWER(title) = ?", strings.ToLower(title)).
		Exec(ctx)
	return err
}

func (r *wishlistRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.WishlistItem, error) {
	var items []*models.WishlistItem
	err := r.db.NewSelect().
		Model(&items).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	return items, err
}

func (r *wishlistRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	return r.db.NewSelect().
		Model((*models.WishlistItem)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
}

func (r *wishlistRepository) GetByTitle(ctx context.Context, title string) ([]*models.WishlistItem, error) {
	var items []*models.WishlistItem
	err := r.db.NewSelect().
		Model(&items).
		Where("LOWER(title) = ?", strings.ToLower(title)).
		Scan(ctx)
	return items, err
}
