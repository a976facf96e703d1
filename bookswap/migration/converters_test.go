package migration

import (
	"testing"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

func TestConvertBookStatus(t *testing.T) {
	tests := []struct {
		legacy string
		want   models.BookStatus
	}{
		{"available", models.BookAvailable},
		{"Reserved", models.BookReserved},
		{"traded", models.BookExchanged},
		{"gone", models.BookExchanged},
		{"", models.BookAvailable},
		{"garbage", models.BookAvailable},
	}
	for _, tt := range tests {
		if got := convertBookStatus(tt.legacy); got != tt.want {
			t.Errorf("convertBookStatus(%q) = %v, want %v", tt.legacy, got, tt.want)
		}
	}
}

func TestConvertExchangeStatus(t *testing.T) {
	tests := []struct {
		legacy string
		want   models.ExchangeStatus
	}{
		{"accepted", models.ExchangeAccepted},
		{"declined", models.ExchangeRejected},
		{"done", models.ExchangeCompleted},
		{"pending", models.ExchangePending},
		{"", models.ExchangePending},
	}
	for _, tt := range tests {
		if got := convertExchangeStatus(tt.legacy); got != tt.want {
			t.Errorf("convertExchangeStatus(%q) = %v, want %v", tt.legacy, got, tt.want)
		}
	}
}

func TestConvertExchangeNilOffer(t *testing.T) {
	got := convertExchange(MongoExchange{LegacyID: 1, InitiatorID: 2, ReceiverID: 3})
	if got.OfferedBookIDs == nil {
		t.Error("OfferedBookIDs = nil, want empty slice for giveaway requests")
	}
	if !got.EmptyOffer() {
		t.Error("EmptyOffer() = false, want true")
	}
}

func TestConvertReviewClampsRating(t *testing.T) {
	if got := convertReview(MongoReview{LegacyID: 1, Rating: 9}); got.Rating != 5 {
		t.Errorf("Rating = %d, want clamp to 5", got.Rating)
	}
	if got := convertReview(MongoReview{LegacyID: 1, Rating: -2}); got.Rating != 1 {
		t.Errorf("Rating = %d, want clamp to 1", got.Rating)
	}
}

func TestConvertConversationParticipants(t *testing.T) {
	if got := convertConversation(MongoConversation{LegacyID: 1, Participants: []int64{1, 2, 3}}); got != nil {
		t.Error("expected nil for group thread")
	}
	got := convertConversation(MongoConversation{LegacyID: 1, Participants: []int64{4, 5}})
	if got == nil {
		t.Fatal("expected conversation for two participants")
	}
	if got.StartedByID != 4 {
		t.Errorf("StartedByID = %d, want fallback to first participant", got.StartedByID)
	}
}

func TestCleanseString(t *testing.T) {
	if got := cleanseString("  Dune\x00 "); got != "Dune" {
		t.Errorf("cleanseString() = %q, want %q", got, "Dune")
	}
}
