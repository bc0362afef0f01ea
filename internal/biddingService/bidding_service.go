package bidding

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/auctionerrors"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/utils"
)

// DefaultMinIncrement is the canonical minimum amount a new bid must exceed
// the floor by. The storefront historically mixed 5 and 10; 5 is the
// enforced value, and it stays configurable.
const DefaultMinIncrement float64 = 5

// applyRetryLimit bounds the evaluate-then-write retries when a concurrent
// bid moves the floor between snapshot and commit.
const applyRetryLimit = 3

// EvaluateBid applies the bidding rules to a snapshot of a listing and a
// proposed amount. It is pure: no I/O, no mutation. A nil return means the
// bid is acceptable at the listing's current floor.
func EvaluateBid(listing models.Listing, amount, minIncrement float64) error {
	if listing.Status != models.StatusActive {
		return fmt.Errorf("listing %s is %s: %w", listing.ListingID, listing.Status, auctionerrors.ErrAuctionClosed)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("amount %v: %w", amount, auctionerrors.ErrInvalidAmount)
	}
	if minBid := listing.Floor() + minIncrement; amount < minBid {
		return fmt.Errorf("%w: minimum acceptable bid is %.2f", auctionerrors.ErrBidTooLow, minBid)
	}
	return nil
}

// BiddingService defines the business logic for placing bids on listings
type BiddingService struct {
	store        repository.AuctionStore
	minIncrement float64
}

// NewBiddingService creates a new BiddingService instance. A non-positive
// minIncrement falls back to DefaultMinIncrement.
func NewBiddingService(store repository.AuctionStore, minIncrement float64) *BiddingService {
	if minIncrement <= 0 {
		minIncrement = DefaultMinIncrement
	}
	return &BiddingService{
		store:        store,
		minIncrement: minIncrement,
	}
}

// MinIncrement returns the configured minimum bid increment
func (s *BiddingService) MinIncrement() float64 {
	return s.minIncrement
}

// PlaceBid validates and records a bid on a listing. The accept path is the
// single source of truth: the listing's current bid and bid count move
// together with the new bid row or not at all. A rejection never mutates
// listing state.
func (s *BiddingService) PlaceBid(listingID, bidderID string, amount float64) (models.Bid, error) {
	if listingID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing listingID or bidderID", auctionerrors.ErrInvalidInput)
	}

	for attempt := 0; attempt < applyRetryLimit; attempt++ {
		listing, err := s.store.GetListingByID(listingID)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
		}

		if err := EvaluateBid(listing, amount, s.minIncrement); err != nil {
			return models.Bid{}, fmt.Errorf("service: bid rejected for listing %s: %w", listingID, err)
		}

		bid := models.Bid{
			BidID:     utils.GenerateID(),
			ListingID: listingID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: time.Now().UTC(),
			Outcome:   models.BidAccepted,
		}

		err = s.store.ApplyAcceptedBid(bid, listing.Floor())
		if errors.Is(err, auctionerrors.ErrBidConflict) {
			// Another bid landed between snapshot and commit; re-evaluate
			// against the new floor.
			continue
		}
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to record bid for listing %s by user %s: %w", listingID, bidderID, err)
		}
		return bid, nil
	}

	return models.Bid{}, fmt.Errorf("service: bid for listing %s kept losing races: %w", listingID, auctionerrors.ErrBidConflict)
}

// GetBidsForListing returns the accepted bids on a listing
func (s *BiddingService) GetBidsForListing(listingID string) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.store.GetBidsByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}
