package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Conversation is the engine's read-only view of the messaging layer: two
// participants and a message counter maintained by the chat transport.
type Conversation struct {
	bun.BaseModel `bun:"table:conversations,alias:cv"`

	ID            int64     `bun:"id,pk,autoincrement"`
	ParticipantA  int64     `bun:"participant_a,notnull"`
	ParticipantB  int64     `bun:"participant_b,notnull"`
	StartedByID   int64     `bun:"started_by_id,notnull"`
	MessageCount  int       `bun:"message_count,notnull,default:0"`
	LastMessageAt time.Time `bun:"last_message_at"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
