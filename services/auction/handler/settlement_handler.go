package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/notifier"
	settlement "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/settlementService"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/services/auction/helpers"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/utils"

	"github.com/gin-gonic/gin"
)

type SettlementServiceInterface interface {
	ScanAndNotify(ctx context.Context, now time.Time) (settlement.BatchReport, error)
}

type WinnerNotifierInterface interface {
	NotifyWinner(ctx context.Context, listingID, userID, bidID string) (notifier.Receipt, error)
}

// SettlementHandler exposes the winner-settlement surface. Its two routes
// keep the response envelopes of the serverless functions they replaced:
// {success, message, results} and {success, message, emailId}.
type SettlementHandler struct {
	service  SettlementServiceInterface
	notifier WinnerNotifierInterface
}

func NewSettlementHandler(service SettlementServiceInterface, n WinnerNotifierInterface) *SettlementHandler {
	return &SettlementHandler{service: service, notifier: n}
}

// ProcessAuctionWinnersHandler handles POST /process-auction-winners. No
// body is required; one scan runs with the configured batch limit.
func (h *SettlementHandler) ProcessAuctionWinnersHandler(c *gin.Context) {
	report, err := h.service.ScanAndNotify(c.Request.Context(), time.Now().UTC())
	if err != nil {
		utils.Error("ProcessAuctionWinnersHandler: scan failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Processed %d auctions with %d winner notifications",
			report.AuctionsScanned, report.NotificationsAttempted),
		"results": report.Results,
	})
	helpers.LogSuccess("ProcessAuctionWinnersHandler", "scan completed", map[string]any{
		"auctions_scanned":        report.AuctionsScanned,
		"notifications_attempted": report.NotificationsAttempted,
	})
}

// SendWinnerEmailHandler handles POST /send-winner-email
func (h *SettlementHandler) SendWinnerEmailHandler(c *gin.Context) {
	var req helpers.WinnerEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Warn("SendWinnerEmailHandler: binding error", map[string]any{"error": err.Error()})
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required parameters",
		})
		return
	}
	if req.AuctionID == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required parameters",
		})
		return
	}

	receipt, err := h.notifier.NotifyWinner(c.Request.Context(), req.AuctionID, req.UserID, req.BidID)
	if err != nil {
		utils.Error("SendWinnerEmailHandler: notification failed", map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Winner notification processed",
		"emailId": receipt.EmailID,
	})
	helpers.LogSuccess("SendWinnerEmailHandler", "winner notification processed", map[string]any{
		"auction_id": req.AuctionID,
		"user_id":    req.UserID,
		"email_id":   receipt.EmailID,
	})
}
