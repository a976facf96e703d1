package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Legacy document shapes as stored in the old MongoDB deployment. Field names
// follow the original collections, not our column names.

type MongoUser struct {
	ObjectID    primitive.ObjectID `bson:"_id,omitempty"`
	LegacyID    int64              `bson:"id"`
	Username    string             `bson:"username"`
	Email       string             `bson:"email"`
	Bio         string             `bson:"bio"`
	Location    string             `bson:"location"`
	Avatar      string             `bson:"avatar"`
	LoginStreak int                `bson:"login_streak"`
	LastLogin   time.Time          `bson:"last_login"`
	Joined      time.Time          `bson:"joined"`
}

type MongoBook struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty"`
	LegacyID  int64              `bson:"id"`
	OwnerID   int64              `bson:"owner_id"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	Condition string             `bson:"condition"`
	Status    string             `bson:"status"`
	AddedAt   time.Time          `bson:"added_at"`
}

type MongoExchange struct {
	ObjectID      primitive.ObjectID `bson:"_id,omitempty"`
	LegacyID      int64              `bson:"id"`
	InitiatorID   int64              `bson:"initiator_id"`
	ReceiverID    int64              `bson:"receiver_id"`
	RequestedBook int64              `bson:"requested_book"`
	OfferedBooks  []int64            `bson:"offered_books"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

type MongoReview struct {
	ObjectID   primitive.ObjectID `bson:"_id,omitempty"`
	LegacyID   int64              `bson:"id"`
	ExchangeID int64              `bson:"exchange_id"`
	RaterID    int64              `bson:"rater_id"`
	RatedID    int64              `bson:"rated_id"`
	Rating     int                `bson:"rating"`
	Comment    string             `bson:"comment"`
	CreatedAt  time.Time          `bson:"created_at"`
}

type MongoConversation struct {
	ObjectID     primitive.ObjectID `bson:"_id,omitempty"`
	LegacyID     int64              `bson:"id"`
	Participants []int64            `bson:"participants"`
	StartedBy    int64              `bson:"started_by"`
	MessageCount int                `bson:"message_count"`
	LastMessage  time.Time          `bson:"last_message"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type MongoWishlistEntry struct {
	ObjectID primitive.ObjectID `bson:"_id,omitempty"`
	UserID   int64              `bson:"user_id"`
	Title    string             `bson:"title"`
	Author   string             `bson:"author"`
	AddedAt  time.Time          `bson:"added_at"`
}

// TableStats tracks per-step outcomes for the final report.
type TableStats struct {
	Read     int `json:"read"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// MigrationStats aggregates the whole run.
type MigrationStats struct {
	Tables    map[string]*TableStats `json:"tables"`
	StartTime time.Time              `json:"startTime"`
	EndTime   time.Time              `json:"endTime"`
}
