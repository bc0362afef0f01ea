package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	ListingID string  `json:"listing_id" binding:"required"`
	BidderID  string  `json:"bidder_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ListingID string  `json:"listing_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

// WinnerEmailRequest is the body of POST /send-winner-email. Required
// fields are checked by hand so the endpoint can answer with its
// historical "Missing required parameters" message.
type WinnerEmailRequest struct {
	AuctionID string `json:"auction_id"`
	UserID    string `json:"user_id"`
	BidID     string `json:"bid_id"`
}
