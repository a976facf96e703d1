package matching

import (
	"context"
	"testing"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

type stubBookStore struct {
	byID      map[int64]*models.Book
	available []*models.Book
}

func (s *stubBookStore) GetByID(_ context.Context, id int64) (*models.Book, error) {
	return s.byID[id], nil
}

func (s *stubBookStore) GetAvailableByTitles(_ context.Context, titles []string, excludeOwnerID int64) ([]*models.Book, error) {
	wanted := make(map[string]bool, len(titles))
	for _, title := range titles {
		wanted[lower(title)] = true
	}
	var matches []*models.Book
	for _, book := range s.available {
		if book.OwnerID != excludeOwnerID && wanted[lower(book.Title)] {
			matches = append(matches, book)
		}
	}
	return matches, nil
}

func (s *stubBookStore) GetAvailableExcluding(_ context.Context, excludeOwnerID int64) ([]*models.Book, error) {
	var books []*models.Book
	for _, book := range s.available {
		if book.OwnerID != excludeOwnerID {
			books = append(books, book)
		}
	}
	return books, nil
}

type stubWishlistStore struct {
	byUser  map[int64][]*models.WishlistItem
	byTitle map[string][]*models.WishlistItem
}

func (s *stubWishlistStore) GetByUserID(_ context.Context, userID int64) ([]*models.WishlistItem, error) {
	return s.byUser[userID], nil
}

func (s *stubWishlistStore) GetByTitle(_ context.Context, title string) ([]*models.WishlistItem, error) {
	return s.byTitle[lower(title)], nil
}

type stubRankingStore struct {
	byUser map[int64]*models.UserRanking
}

func (s *stubRankingStore) GetByUserIDs(_ context.Context, userIDs []int64) ([]*models.UserRanking, error) {
	var rankings []*models.UserRanking
	for _, id := range userIDs {
		if r, ok := s.byUser[id]; ok {
			rankings = append(rankings, r)
		}
	}
	return rankings, nil
}

type stubUserStore struct {
	byID map[int64]*models.User
}

func (s *stubUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	return s.byID[id], nil
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func wish(userID int64, title string) *models.WishlistItem {
	return &models.WishlistItem{UserID: userID, Title: title}
}

func TestFindOffersEmptyWishlist(t *testing.T) {
	s := NewService(
		&stubBookStore{},
		&stubWishlistStore{byUser: map[int64][]*models.WishlistItem{}},
		&stubRankingStore{byUser: map[int64]*models.UserRanking{}},
		&stubUserStore{},
	)

	offers, err := s.FindOffers(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindOffers() error = %v", err)
	}
	if offers == nil {
		t.Fatal("FindOffers() = nil, want empty slice")
	}
	if len(offers) != 0 {
		t.Errorf("FindOffers() returned %d offers, want 0", len(offers))
	}
}

// A premium-tier owner outranks a better-ranked regular-tier owner.
func TestFindOffersPremiumBeforeRank(t *testing.T) {
	books := &stubBookStore{
		available: []*models.Book{
			{ID: 10, OwnerID: 2, Title: "Dune", Status: models.BookAvailable},
			{ID: 11, OwnerID: 3, Title: "DUNE", Status: models.BookAvailable},
		},
	}
	wishlists := &stubWishlistStore{
		byUser: map[int64][]*models.WishlistItem{1: {wish(1, "dune")}},
	}
	rankings := &stubRankingStore{byUser: map[int64]*models.UserRanking{
		2: {UserID: 2, Tier: models.TierGold, Rank: 1},
		3: {UserID: 3, Tier: models.TierPlatinum, Rank: 50},
	}}

	s := NewService(books, wishlists, rankings, &stubUserStore{})
	offers, err := s.FindOffers(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindOffers() error = %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("FindOffers() returned %d offers, want 2", len(offers))
	}
	if offers[0].Book.ID != 11 {
		t.Errorf("first offer book = %d, want platinum owner's book 11", offers[0].Book.ID)
	}
	if offers[0].MatchScore != 100 {
		t.Errorf("MatchScore = %d, want 100 for exact title match", offers[0].MatchScore)
	}
	if offers[1].Book.ID != 10 {
		t.Errorf("second offer book = %d, want 10", offers[1].Book.ID)
	}
}

// Within the same tier, exact matches come before fuzzy ones, and a missing
// ranking record sorts last.
func TestFindOffersOrdering(t *testing.T) {
	books := &stubBookStore{
		available: []*models.Book{
			{ID: 10, OwnerID: 2, Title: "The Hobbit", Status: models.BookAvailable},
			{ID: 11, OwnerID: 3, Title: "The Hobbit: Illustrated", Status: models.BookAvailable},
			{ID: 12, OwnerID: 4, Title: "the hobbit", Status: models.BookAvailable},
		},
	}
	wishlists := &stubWishlistStore{
		byUser: map[int64][]*models.WishlistItem{1: {wish(1, "The Hobbit")}},
	}
	rankings := &stubRankingStore{byUser: map[int64]*models.UserRanking{
		2: {UserID: 2, Tier: models.TierSilver, Rank: 8},
		3: {UserID: 3, Tier: models.TierSilver, Rank: 2},
		// owner 4 has no ranking record
	}}

	s := NewService(books, wishlists, rankings, &stubUserStore{})
	offers, err := s.FindOffers(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindOffers() error = %v", err)
	}
	if len(offers) != 3 {
		t.Fatalf("FindOffers() returned %d offers, want 3", len(offers))
	}

	// Tier priority outranks match score: both silver owners first (exact
	// before fuzzy within the tier), the unranked owner last.
	if offers[0].Book.ID != 10 || offers[0].MatchScore != 100 {
		t.Errorf("offers[0] = book %d score %d, want book 10 score 100", offers[0].Book.ID, offers[0].MatchScore)
	}
	if offers[1].Book.ID != 11 || offers[1].MatchScore != 80 {
		t.Errorf("offers[1] = book %d score %d, want fuzzy book 11 score 80", offers[1].Book.ID, offers[1].MatchScore)
	}
	if offers[2].Book.ID != 12 || offers[2].MatchScore != 100 {
		t.Errorf("offers[2] = book %d score %d, want unranked owner's book 12 last", offers[2].Book.ID, offers[2].MatchScore)
	}
}

func TestFindOffersCap(t *testing.T) {
	books := &stubBookStore{}
	for i := int64(0); i < 15; i++ {
		books.available = append(books.available, &models.Book{
			ID: 100 + i, OwnerID: 2 + i, Title: "Neuromancer", Status: models.BookAvailable,
		})
	}
	wishlists := &stubWishlistStore{
		byUser: map[int64][]*models.WishlistItem{1: {wish(1, "Neuromancer")}},
	}

	s := NewService(books, wishlists, &stubRankingStore{byUser: map[int64]*models.UserRanking{}}, &stubUserStore{})
	offers, err := s.FindOffers(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindOffers() error = %v", err)
	}
	if len(offers) != 10 {
		t.Errorf("FindOffers() returned %d offers, want cap of 10", len(offers))
	}
}

func TestFindInterestedUsers(t *testing.T) {
	book := &models.Book{ID: 10, OwnerID: 5, Title: "Dune"}
	books := &stubBookStore{byID: map[int64]*models.Book{10: book}}
	wishlists := &stubWishlistStore{byTitle: map[string][]*models.WishlistItem{
		"dune": {wish(2, "dune"), wish(3, "Dune"), wish(5, "Dune")},
	}}
	rankings := &stubRankingStore{byUser: map[int64]*models.UserRanking{
		2: {UserID: 2, Tier: models.TierBronze, Rank: 40},
		3: {UserID: 3, Tier: models.TierDiamond, Rank: 3},
	}}
	users := &stubUserStore{byID: map[int64]*models.User{
		2: {ID: 2, Username: "ana"},
		3: {ID: 3, Username: "bo"},
		5: {ID: 5, Username: "owner"},
	}}

	s := NewService(books, wishlists, rankings, users)
	interested, err := s.FindInterestedUsers(context.Background(), 10)
	if err != nil {
		t.Fatalf("FindInterestedUsers() error = %v", err)
	}
	if len(interested) != 2 {
		t.Fatalf("FindInterestedUsers() returned %d users, want 2 (owner excluded)", len(interested))
	}
	if interested[0].User.ID != 3 {
		t.Errorf("first interested user = %d, want diamond user 3", interested[0].User.ID)
	}
	if interested[1].User.ID != 2 {
		t.Errorf("second interested user = %d, want 2", interested[1].User.ID)
	}
}

func TestFindInterestedUsersMissingBook(t *testing.T) {
	s := NewService(
		&stubBookStore{byID: map[int64]*models.Book{}},
		&stubWishlistStore{},
		&stubRankingStore{byUser: map[int64]*models.UserRanking{}},
		&stubUserStore{},
	)
	interested, err := s.FindInterestedUsers(context.Background(), 404)
	if err != nil {
		t.Fatalf("FindInterestedUsers() error = %v", err)
	}
	if len(interested) != 0 {
		t.Errorf("FindInterestedUsers() returned %d users, want 0", len(interested))
	}
}
