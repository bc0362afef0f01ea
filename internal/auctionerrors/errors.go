package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrNoBids          = errors.New("no bids found for listing")
	ErrBidConflict     = errors.New("listing price changed since bid was evaluated")
)

// Bid validation errors. These are typed rejections reported to the
// bidder, never unrecoverable faults.
var (
	ErrInvalidInput  = errors.New("invalid bid request")
	ErrInvalidAmount = errors.New("bid amount must be a positive finite number")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrAuctionClosed = errors.New("auction is not accepting bids")
)

// Settlement errors
var (
	ErrDeliveryFailed = errors.New("winner notification delivery failed")
)
