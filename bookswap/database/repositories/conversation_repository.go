package repositories

import (
	"context"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/uptrace/bun"
)

type ConversationRepository interface {
	GetByParticipant(ctx context.Context, userID int64) ([]*models.Conversation, error)
}

type conversationRepository struct {
	db *bun.DB
}

func NewConversationRepository(db *bun.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) GetByParticipant(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	var conversations []*models.Conversation
	err := r.db.NewSelect().
		Model(&conversations).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("participant_a = ?", userID).WhereOr("participant_b = ?", userID)
		}).
		Scan(ctx)
	return conversations, err
}
