package models

import "time"

// AuctionStatus describes where a listing is in its lifecycle
type AuctionStatus string

const (
	StatusActive   AuctionStatus = "active"
	StatusUpcoming AuctionStatus = "upcoming"
	StatusEnded    AuctionStatus = "ended"
)

// BidOutcome records whether a submitted bid was accepted or rejected
type BidOutcome string

const (
	BidAccepted BidOutcome = "accepted"
	BidRejected BidOutcome = "rejected"
)

// WinnerStatus tracks the settlement state of a winner record
type WinnerStatus string

const (
	WinnerPendingPayment WinnerStatus = "pending_payment"
	WinnerNotified       WinnerStatus = "notified"
	WinnerPaid           WinnerStatus = "paid"
	WinnerExpired        WinnerStatus = "expired"
)

// User represents a participant in the auction storefront
type User struct {
	UserID string  `json:"user_id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Rating float64 `json:"rating"`
}

// Category groups listings for browsing
type Category struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// Listing represents one auction lot being sold
type Listing struct {
	ListingID        string        `json:"listing_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	StartingPrice    float64       `json:"starting_price"`
	CurrentBid       *float64      `json:"current_bid,omitempty"`
	BidCount         int           `json:"bid_count"`
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	Status           AuctionStatus `json:"status"`
	Category         string        `json:"category"`
	SellerID         string        `json:"seller_id"`
	Featured         bool          `json:"featured"`
	WinnersProcessed bool          `json:"winners_processed"`
}

// Floor returns the current minimum reference price for the next bid:
// the current bid when one exists, otherwise the starting price.
func (l Listing) Floor() float64 {
	if l.CurrentBid != nil {
		return *l.CurrentBid
	}
	return l.StartingPrice
}

// Bid represents one accepted offer on a listing. Rejected bids are
// reported to the caller but never stored.
type Bid struct {
	BidID     string     `json:"bid_id"`
	ListingID string     `json:"listing_id"`
	BidderID  string     `json:"bidder_id"`
	Amount    float64    `json:"amount"`
	CreatedAt time.Time  `json:"created_at"`
	Outcome   BidOutcome `json:"outcome"`
}

// Winner is the settlement record linking a closed listing to its top
// bidder. Winner rows are created by an external settlement process when a
// listing closes; this service only moves them from pending_payment to
// notified.
type Winner struct {
	WinnerID     string       `json:"winner_id"`
	ListingID    string       `json:"listing_id"`
	UserID       string       `json:"user_id"`
	WinningBidID string       `json:"winning_bid_id"`
	Status       WinnerStatus `json:"status"`
}

// Notification is the persisted record written alongside a winner email
type Notification struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}
