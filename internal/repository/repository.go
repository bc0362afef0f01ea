package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/auctionerrors"
	model "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
)

// ListingFilter narrows a catalog browse. Zero values mean "no filter".
type ListingFilter struct {
	Category string
	Status   model.AuctionStatus
	Featured *bool
	Query    string // matched case-insensitively against title and description
}

// AuctionStore defines the storage interface for the auction storefront.
// The bidding and settlement services depend only on this interface, never
// on a concrete store.
type AuctionStore interface {
	// Catalog
	GetListingByID(listingID string) (model.Listing, error)
	ListListings(filter ListingFilter) ([]model.Listing, error)
	ListCategories() ([]model.Category, error)

	// Bidding
	GetBidsByListing(listingID string) ([]model.Bid, error)
	GetBidByID(bidID string) (model.Bid, error)
	// ApplyAcceptedBid commits an accepted bid as one atomic unit: the bid
	// row is appended, the listing's current bid becomes bid.Amount and its
	// bid count is incremented by exactly one. expectedFloor is the floor
	// the bid was evaluated against; if the listing's floor no longer
	// matches, the store returns ErrBidConflict and nothing is mutated.
	ApplyAcceptedBid(bid model.Bid, expectedFloor float64) error

	// Users
	GetUserByID(userID string) (model.User, error)

	// Settlement
	FindEndedUnprocessedAuctions(now time.Time, limit int) ([]model.Listing, error)
	FindPendingWinners(listingID string) ([]model.Winner, error)
	MarkWinnerNotified(listingID, userID string) error
	MarkListingEnded(listingID string) error
	CreateNotification(n model.Notification) error
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryStore struct {
	mu            sync.RWMutex
	listings      map[string]*model.Listing
	bids          map[string][]model.Bid // key: listingID
	bidsByID      map[string]model.Bid
	users         map[string]model.User
	categories    []model.Category
	winners       map[string][]*model.Winner // key: listingID
	notifications []model.Notification
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		listings: make(map[string]*model.Listing),
		bids:     make(map[string][]model.Bid),
		bidsByID: make(map[string]model.Bid),
		users:    make(map[string]model.User),
		winners:  make(map[string][]*model.Winner),
	}
}

// GetListingByID returns a snapshot of one listing
func (s *MemoryStore) GetListingByID(listingID string) (model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return *listing, nil
}

// ListListings returns listings matching the filter, newest start first
func (s *MemoryStore) ListListings(filter ListingFilter) ([]model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	matched := make([]model.Listing, 0)
	for _, listing := range s.listings {
		if filter.Category != "" && listing.Category != filter.Category {
			continue
		}
		if filter.Status != "" && listing.Status != filter.Status {
			continue
		}
		if filter.Featured != nil && listing.Featured != *filter.Featured {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(listing.Title), query) &&
			!strings.Contains(strings.ToLower(listing.Description), query) {
			continue
		}
		matched = append(matched, *listing)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].StartTime.Equal(matched[j].StartTime) {
			return matched[i].ListingID < matched[j].ListingID
		}
		return matched[i].StartTime.After(matched[j].StartTime)
	})
	return matched, nil
}

// ListCategories returns all storefront categories
func (s *MemoryStore) ListCategories() ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Category(nil), s.categories...), nil
}

// GetBidsByListing returns all accepted bids for a listing, newest first
func (s *MemoryStore) GetBidsByListing(listingID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.listings[listingID]; !ok {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	bids, ok := s.bids[listingID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}

	out := append([]model.Bid(nil), bids...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// GetBidByID returns one bid by its id
func (s *MemoryStore) GetBidByID(bidID string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bid, ok := s.bidsByID[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

// ApplyAcceptedBid commits an accepted bid against the listing it targets.
// The floor comparison makes the evaluate-then-write step optimistic: a
// concurrent accepted bid changes the floor and forces the caller to
// re-evaluate.
func (s *MemoryStore) ApplyAcceptedBid(bid model.Bid, expectedFloor float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[bid.ListingID]
	if !ok {
		return fmt.Errorf("apply bid for listing %s: %w", bid.ListingID, auctionerrors.ErrListingNotFound)
	}
	if listing.Floor() != expectedFloor {
		return fmt.Errorf("apply bid for listing %s: %w", bid.ListingID, auctionerrors.ErrBidConflict)
	}

	amount := bid.Amount
	listing.CurrentBid = &amount
	listing.BidCount++
	s.bids[bid.ListingID] = append(s.bids[bid.ListingID], bid)
	s.bidsByID[bid.BidID] = bid
	return nil
}

// GetUserByID returns one user by id
func (s *MemoryStore) GetUserByID(userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// FindEndedUnprocessedAuctions returns up to limit listings whose end time
// is strictly before now and whose winners have not yet been processed,
// most recently ended first.
func (s *MemoryStore) FindEndedUnprocessedAuctions(now time.Time, limit int) ([]model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ended := make([]model.Listing, 0)
	for _, listing := range s.listings {
		if listing.EndTime.Before(now) && !listing.WinnersProcessed {
			ended = append(ended, *listing)
		}
	}

	sort.Slice(ended, func(i, j int) bool {
		if ended[i].EndTime.Equal(ended[j].EndTime) {
			return ended[i].ListingID < ended[j].ListingID
		}
		return ended[i].EndTime.After(ended[j].EndTime)
	})

	if limit > 0 && len(ended) > limit {
		ended = ended[:limit]
	}
	return ended, nil
}

// FindPendingWinners returns winners of a listing still awaiting payment
func (s *MemoryStore) FindPendingWinners(listingID string) ([]model.Winner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.listings[listingID]; !ok {
		return nil, fmt.Errorf("find winners for listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}

	pending := make([]model.Winner, 0)
	for _, w := range s.winners[listingID] {
		if w.Status == model.WinnerPendingPayment {
			pending = append(pending, *w)
		}
	}
	return pending, nil
}

// MarkWinnerNotified transitions a pending winner to notified
func (s *MemoryStore) MarkWinnerNotified(listingID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.winners[listingID] {
		if w.UserID == userID && w.Status == model.WinnerPendingPayment {
			w.Status = model.WinnerNotified
			return nil
		}
	}
	return fmt.Errorf("mark winner notified for listing %s user %s: no pending winner", listingID, userID)
}

// MarkListingEnded records the scanner's observation that a listing is past
// its end time
func (s *MemoryStore) MarkListingEnded(listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return fmt.Errorf("mark listing %s ended: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	listing.Status = model.StatusEnded
	return nil
}

// CreateNotification persists a notification record
func (s *MemoryStore) CreateNotification(n model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return nil
}

// Notifications returns all persisted notifications. Intended for tests.
func (s *MemoryStore) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Notification(nil), s.notifications...)
}

// AddListing adds a listing to the store. Used by seeding and tests.
func (s *MemoryStore) AddListing(listing model.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := listing
	s.listings[listing.ListingID] = &copied
}

// AddBid records an existing bid without touching the listing's price
// state. Used by seeding and tests.
func (s *MemoryStore) AddBid(bid model.Bid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bids[bid.ListingID] = append(s.bids[bid.ListingID], bid)
	s.bidsByID[bid.BidID] = bid
}

// AddUser adds a user to the store. Used by seeding and tests.
func (s *MemoryStore) AddUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
}

// AddCategory adds a category to the store. Used by seeding and tests.
func (s *MemoryStore) AddCategory(category model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, category)
}

// AddWinner adds a winner record, standing in for the external settlement
// process that creates them when a listing closes.
func (s *MemoryStore) AddWinner(winner model.Winner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := winner
	s.winners[winner.ListingID] = append(s.winners[winner.ListingID], &copied)
}
