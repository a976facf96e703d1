package repositories

import (
	"context"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/uptrace/bun"
)

type ExchangeRepository interface {
	Create(ctx context.Context, exchange *models.Exchange) error
	UpdateStatus(ctx context.Context, id int64, status models.ExchangeStatus) error
	CountCompletedInvolving(ctx context.Context, userID int64) (int, error)
	// CountRejectedNonEmpty counts exchanges the user rejected as receiver
	// while the offer was non-empty. Giveaway requests carry no penalty.
	CountRejectedNonEmpty(ctx context.Context, userID int64) (int, error)
	CountInitiated(ctx context.Context, userID int64) (total int, completed int, err error)
}

type exchangeRepository struct {
	db *bun.DB
}

func NewExchangeRepository(db *bun.DB) ExchangeRepository {
	return &exchangeRepository{db: db}
}

func (r *exchangeRepository) Create(ctx context.Context, exchange *models.Exchange) error {
	exchange.CreatedAt = time.Now()
	exchange.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(exchange).Exec(ctx)
	return err
}

func (r *exchangeRepository) UpdateStatus(ctx context.Context, id int64, status models.ExchangeStatus) error {
	_, err := r.db.NewUpdate().
		Model((*models.Exchange)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *exchangeRepository) CountCompletedInvolving(ctx context.Context, userID int64) (int, error) {
	return r.db.NewSelect().
		Model((*models.Exchange)(nil)).
		Where("status = ?", models.ExchangeCompleted).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("initiator_id = ?", userID).WhereOr("receiver_id = ?", userID)
		}).
		Count(ctx)
}

func (r *exchangeRepository) CountRejectedNonEmpty(ctx context.Context, userID int64) (int, error) {
	return r.db.NewSelect().
		Model((*models.Exchange)(nil)).
		Where("status = ?", models.ExchangeRejected).
		Where("receiver_id = ?", userID).
		Where("COALESCE(array_length(offered_book_ids, 1), 0) > 0").
		Count(ctx)
}

func (r *exchangeRepository) CountInitiated(ctx context.Context, userID int64) (int, int, error) {
	total, err := r.db.NewSelect().
		Model((*models.Exchange)(nil)).
		Where("initiator_id = ?", userID).
		Count(ctx)
	if err != nil {
		return 0, 0, err
	}

	completed, err := r.db.NewSelect().
		Model((*models.Exchange)(nil)).
		Where("initiator_id = ?", userID).
		Where("status = ?", models.ExchangeCompleted).
		Count(ctx)
	if err != nil {
		return 0, 0, err
	}

	return total, completed, nil
}
