package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/auctionerrors"
	model "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/services/auction/helpers"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(listingID, bidderID string, amount float64) (model.Bid, error)
	GetBidsForListing(listingID string) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.ListingID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"listing_id": req.ListingID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		ListingID: bid.ListingID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}

// GetListingBidsHandler handles GET /listings/:listing_id/bids
func (h *BiddingHandler) GetListingBidsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bids, err := h.service.GetBidsForListing(listingID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetListingBidsHandler: error retrieving bids", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetListingBidsHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(bids),
	})
}
