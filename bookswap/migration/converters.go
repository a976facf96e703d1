package migration

import (
	"strings"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

func convertUser(mu MongoUser) *models.User {
	now := time.Now()
	created := mu.Joined
	if created.IsZero() {
		created = now
	}
	return &models.User{
		ID:              mu.LegacyID,
		Username:        cleanseString(mu.Username),
		Email:           strings.ToLower(strings.TrimSpace(mu.Email)),
		Bio:             cleanseString(mu.Bio),
		Location:        cleanseString(mu.Location),
		AvatarURL:       mu.Avatar,
		LoginStreakDays: mu.LoginStreak,
		LastLoginAt:     mu.LastLogin,
		CreatedAt:       created,
		UpdatedAt:       now,
	}
}

func convertBook(mb MongoBook) *models.Book {
	now := time.Now()
	created := mb.AddedAt
	if created.IsZero() {
		created = now
	}
	return &models.Book{
		ID:        mb.LegacyID,
		OwnerID:   mb.OwnerID,
		Title:     cleanseString(mb.Title),
		Author:    cleanseString(mb.Author),
		Condition: mb.Condition,
		Status:    convertBookStatus(mb.Status),
		CreatedAt: created,
		UpdatedAt: now,
	}
}

func convertBookStatus(status string) models.BookStatus {
	switch strings.ToLower(status) {
	case "reserved":
		return models.BookReserved
	case "exchanged", "traded", "gone":
		return models.BookExchanged
	default:
		return models.BookAvailable
	}
}

func convertExchange(me MongoExchange) *models.Exchange {
	now := time.Now()
	created := me.CreatedAt
	if created.IsZero() {
		created = now
	}
	updated := me.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	offered := me.OfferedBooks
	if offered == nil {
		offered = []int64{}
	}
	return &models.Exchange{
		ID:              me.LegacyID,
		InitiatorID:     me.InitiatorID,
		ReceiverID:      me.ReceiverID,
		RequestedBookID: me.RequestedBook,
		OfferedBookIDs:  offered,
		Status:          convertExchangeStatus(me.Status),
		CreatedAt:       created,
		UpdatedAt:       updated,
	}
}

func convertExchangeStatus(status string) models.ExchangeStatus {
	switch strings.ToLower(status) {
	case "accepted":
		return models.ExchangeAccepted
	case "rejected", "declined":
		return models.ExchangeRejected
	case "completed", "done":
		return models.ExchangeCompleted
	default:
		return models.ExchangePending
	}
}

func convertReview(mr MongoReview) *models.Review {
	created := mr.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	rating := mr.Rating
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return &models.Review{
		ID:         mr.LegacyID,
		ExchangeID: mr.ExchangeID,
		RaterID:    mr.RaterID,
		RatedID:    mr.RatedID,
		Rating:     rating,
		Comment:    cleanseString(mr.Comment),
		CreatedAt:  created,
	}
}

// convertConversation returns nil for documents without exactly two
// participants; the legacy data has a handful of orphaned group threads.
func convertConversation(mc MongoConversation) *models.Conversation {
	if len(mc.Participants) != 2 {
		return nil
	}
	created := mc.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	startedBy := mc.StartedBy
	if startedBy == 0 {
		startedBy = mc.Participants[0]
	}
	return &models.Conversation{
		ID:            mc.LegacyID,
		ParticipantA:  mc.Participants[0],
		ParticipantB:  mc.Participants[1],
		StartedByID:   startedBy,
		MessageCount:  mc.MessageCount,
		LastMessageAt: mc.LastMessage,
		CreatedAt:     created,
	}
}

func convertWishlistEntry(mw MongoWishlistEntry) *models.WishlistItem {
	now := time.Now()
	created := mw.AddedAt
	if created.IsZero() {
		created = now
	}
	return &models.WishlistItem{
		UserID:    mw.UserID,
		Title:     cleanseString(mw.Title),
		Author:    cleanseString(mw.Author),
		CreatedAt: created,
		UpdatedAt: now,
	}
}

// cleanseString strips null bytes and surrounding whitespace; the legacy dump
// carries both from a bad client build.
func cleanseString(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}
