package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ExchangeStatus string

const (
	ExchangePending   ExchangeStatus = "pending"
	ExchangeAccepted  ExchangeStatus = "accepted"
	ExchangeRejected  ExchangeStatus = "rejected"
	ExchangeCompleted ExchangeStatus = "completed"
)

// Exchange is one negotiation between two users. OfferedBookIDs holds the
// initiator's counter-offer; an empty slice means a giveaway request.
type Exchange struct {
	bun.BaseModel `bun:"table:exchanges,alias:ex"`

	ID              int64          `bun:"id,pk,autoincrement"`
	InitiatorID     int64          `bun:"initiator_id,notnull"`
	ReceiverID      int64          `bun:"receiver_id,notnull"`
	RequestedBookID int64          `bun:"requested_book_id,notnull"`
	OfferedBookIDs  []int64        `bun:"offered_book_ids,array"`
	Status          ExchangeStatus `bun:"status,notnull,default:'pending'"`
	CreatedAt       time.Time      `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt       time.Time      `bun:"updated_at,notnull,default:current_timestamp"`

	RequestedBook *Book `bun:"rel:belongs-to,join:requested_book_id=id"`
}

// EmptyOffer reports whether the exchange carried no counter-offer.
func (e *Exchange) EmptyOffer() bool {
	return len(e.OfferedBookIDs) == 0
}
