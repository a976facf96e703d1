package matching

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/bookswap/bookswap/bookswap/ranking"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
)

const (
	exactMatchScore = 100
	fuzzyMatchScore = 80
	maxResults      = 10

	rankingCacheSize   = 4096
	rankingCacheExpiry = time.Minute
)

type BookStore interface {
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetAvailableByTitles(ctx context.Context, titles []string, excludeOwnerID int64) ([]*models.Book, error)
	GetAvailableExcluding(ctx context.Context, excludeOwnerID int64) ([]*models.Book, error)
}

type WishlistStore interface {
	GetByUserID(ctx context.Context, userID int64) ([]*models.WishlistItem, error)
	GetByTitle(ctx context.Context, title string) ([]*models.WishlistItem, error)
}

type RankingStore interface {
	GetByUserIDs(ctx context.Context, userIDs []int64) ([]*models.UserRanking, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// Offer is one candidate book for a user's wishlist, carrying the owner's
// standing so the caller can render tier badges.
type Offer struct {
	Book       *models.Book `json:"book"`
	Owner      *models.User `json:"owner"`
	MatchScore int          `json:"matchScore"`
	OwnerTier  models.Tier  `json:"ownerTier,omitempty"`
	OwnerRank  int          `json:"ownerRank,omitempty"`
}

// InterestedUser is one user whose wishlist contains a given book's title.
type InterestedUser struct {
	User *models.User `json:"user"`
	Tier models.Tier  `json:"tier,omitempty"`
	Rank int          `json:"rank,omitempty"`
}

// Service is the read-only matching path over wishlists, inventory and the
// ranking store. Owner rankings go through a small expiring LRU so busy
// browse pages do not hammer the rankings table.
type Service struct {
	books     BookStore
	wishlists WishlistStore
	rankings  RankingStore
	users     UserStore
	cache     *lru.Cache
}

type cachedRanking struct {
	ranking   *models.UserRanking // nil means "known absent"
	timestamp time.Time
}

func NewService(books BookStore, wishlists WishlistStore, rankings RankingStore, users UserStore) *Service {
	cache, _ := lru.New(rankingCacheSize)
	return &Service{
		books:     books,
		wishlists: wishlists,
		rankings:  rankings,
		users:     users,
		cache:     cache,
	}
}

// bookSearchItems implements fuzzy.Source over candidate book titles.
type bookSearchItems []*models.Book

func (items bookSearchItems) Len() int {
	return len(items)
}

func (items bookSearchItems) String(i int) string {
	return strings.ToLower(items[i].Title)
}

// FindOffers cross-references the user's wishlist against other users'
// available inventory. Exact case-insensitive title matches score 100;
// fuzzy title matches score 80. Results are ordered by the owner's standing
// and capped at 10. An empty or missing wishlist yields an empty result.
func (s *Service) FindOffers(ctx context.Context, userID int64) ([]Offer, error) {
	wishlist, err := s.wishlists.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load wishlist for user %d: %w", userID, err)
	}
	if len(wishlist) == 0 {
		return []Offer{}, nil
	}

	wanted := make(map[string]bool, len(wishlist))
	titles := make([]string, 0, len(wishlist))
	for _, item := range wishlist {
		key := strings.ToLower(item.Title)
		if !wanted[key] {
			wanted[key] = true
			titles = append(titles, item.Title)
		}
	}

	exact, err := s.books.GetAvailableByTitles(ctx, titles, userID)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}

	seen := make(map[int64]bool, len(exact))
	offers := make([]Offer, 0, len(exact))
	for _, book := range exact {
		seen[book.ID] = true
		offers = append(offers, Offer{Book: book, Owner: book.Owner, MatchScore: exactMatchScore})
	}

	fuzzyOffers, err := s.findFuzzyOffers(ctx, userID, titles, seen)
	if err != nil {
		// Fuzzy expansion is an enrichment; exact matches still stand.
		slog.Warn("Fuzzy match expansion failed",
			slog.Int64("user_id", userID),
			slog.Any("error", err))
	} else {
		offers = append(offers, fuzzyOffers...)
	}

	if err := s.attachOwnerRankings(ctx, offers); err != nil {
		return nil, err
	}

	sortOffers(offers)
	if len(offers) > maxResults {
		offers = offers[:maxResults]
	}
	return offers, nil
}

// findFuzzyOffers scans the remaining available inventory for near-title
// matches against the wishlist.
func (s *Service) findFuzzyOffers(ctx context.Context, userID int64, titles []string, seen map[int64]bool) ([]Offer, error) {
	available, err := s.books.GetAvailableExcluding(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates := make(bookSearchItems, 0, len(available))
	for _, book := range available {
		if !seen[book.ID] {
			candidates = append(candidates, book)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var offers []Offer
	matched := make(map[int64]bool)
	for _, title := range titles {
		for _, m := range fuzzy.FindFrom(strings.ToLower(title), candidates) {
			book := candidates[m.Index]
			if matched[book.ID] {
				continue
			}
			matched[book.ID] = true
			offers = append(offers, Offer{Book: book, Owner: book.Owner, MatchScore: fuzzyMatchScore})
		}
	}
	return offers, nil
}

// FindInterestedUsers performs the inverse lookup: every user whose wishlist
// contains the book's title, ordered by their standing. Missing book yields
// an empty result.
func (s *Service) FindInterestedUsers(ctx context.Context, bookID int64) ([]InterestedUser, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("load book %d: %w", bookID, err)
	}
	if book == nil {
		return []InterestedUser{}, nil
	}

	items, err := s.wishlists.GetByTitle(ctx, book.Title)
	if err != nil {
		return nil, fmt.Errorf("query wishlists: %w", err)
	}

	seen := make(map[int64]bool)
	var interested []InterestedUser
	for _, item := range items {
		if item.UserID == book.OwnerID || seen[item.UserID] {
			continue
		}
		seen[item.UserID] = true

		user, err := s.users.GetByID(ctx, item.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}

		entry := InterestedUser{User: user}
		if r := s.lookupRanking(ctx, item.UserID); r != nil {
			entry.Tier = r.Tier
			entry.Rank = r.Rank
		}
		interested = append(interested, entry)
	}

	sort.SliceStable(interested, func(i, j int) bool {
		return standingLess(interested[i].Tier, interested[i].Rank, interested[j].Tier, interested[j].Rank)
	})

	if interested == nil {
		interested = []InterestedUser{}
	}
	return interested, nil
}

// attachOwnerRankings batch-resolves owner rankings, cache first.
func (s *Service) attachOwnerRankings(ctx context.Context, offers []Offer) error {
	var misses []int64
	missSet := make(map[int64]bool)
	for _, offer := range offers {
		ownerID := offer.Book.OwnerID
		if _, ok := s.cacheGet(ownerID); !ok && !missSet[ownerID] {
			missSet[ownerID] = true
			misses = append(misses, ownerID)
		}
	}

	if len(misses) > 0 {
		rankings, err := s.rankings.GetByUserIDs(ctx, misses)
		if err != nil {
			return fmt.Errorf("resolve owner rankings: %w", err)
		}
		byUser := make(map[int64]*models.UserRanking, len(rankings))
		for _, r := range rankings {
			byUser[r.UserID] = r
		}
		for _, ownerID := range misses {
			s.cache.Add(ownerID, cachedRanking{ranking: byUser[ownerID], timestamp: time.Now()})
		}
	}

	for i := range offers {
		if r, ok := s.cacheGet(offers[i].Book.OwnerID); ok && r != nil {
			offers[i].OwnerTier = r.Tier
			offers[i].OwnerRank = r.Rank
		}
	}
	return nil
}

func (s *Service) lookupRanking(ctx context.Context, userID int64) *models.UserRanking {
	if r, ok := s.cacheGet(userID); ok {
		return r
	}
	rankings, err := s.rankings.GetByUserIDs(ctx, []int64{userID})
	if err != nil {
		slog.Warn("Ranking lookup failed", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil
	}
	var r *models.UserRanking
	if len(rankings) > 0 {
		r = rankings[0]
	}
	s.cache.Add(userID, cachedRanking{ranking: r, timestamp: time.Now()})
	return r
}

func (s *Service) cacheGet(userID int64) (*models.UserRanking, bool) {
	v, ok := s.cache.Get(userID)
	if !ok {
		return nil, false
	}
	entry := v.(cachedRanking)
	if time.Since(entry.timestamp) > rankingCacheExpiry {
		s.cache.Remove(userID)
		return nil, false
	}
	return entry.ranking, true
}

// sortOffers orders candidates: premium-tier owners first, then exact tier
// priority, then match score, then better (lower) rank. A missing rank
// sorts last.
func sortOffers(offers []Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := offers[i], offers[j]
		if pa, pb := ranking.IsPremiumTier(a.OwnerTier), ranking.IsPremiumTier(b.OwnerTier); pa != pb {
			return pa
		}
		if ta, tb := ranking.TierPriority(a.OwnerTier), ranking.TierPriority(b.OwnerTier); ta != tb {
			return ta > tb
		}
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		return effectiveRank(a.OwnerRank) < effectiveRank(b.OwnerRank)
	})
}

func standingLess(tierA models.Tier, rankA int, tierB models.Tier, rankB int) bool {
	if pa, pb := ranking.IsPremiumTier(tierA), ranking.IsPremiumTier(tierB); pa != pb {
		return pa
	}
	if ta, tb := ranking.TierPriority(tierA), ranking.TierPriority(tierB); ta != tb {
		return ta > tb
	}
	return effectiveRank(rankA) < effectiveRank(rankB)
}

// effectiveRank treats 0 ("not yet ranked") as unranked, sorting last.
func effectiveRank(rank int) int {
	if rank <= 0 {
		return math.MaxInt
	}
	return rank
}
