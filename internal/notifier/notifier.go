package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/auctionerrors"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/utils"
)

// Email is one outbound winner email
type Email struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers winner emails. A delivery failure is reported per winner
// and never retried in-process.
type Mailer interface {
	Send(ctx context.Context, email Email) (string, error)
}

// Receipt reports what a successful winner notification produced
type Receipt struct {
	NotificationID string  `json:"notificationId"`
	EmailID        string  `json:"emailId"`
	Amount         float64 `json:"amount"`
}

// WinnerNotifier resolves a winner's listing, user and winning bid, writes
// a persisted notification record, delivers the email, and transitions the
// winner to notified.
type WinnerNotifier struct {
	store  repository.AuctionStore
	mailer Mailer
}

// NewWinnerNotifier creates a new WinnerNotifier instance
func NewWinnerNotifier(store repository.AuctionStore, mailer Mailer) *WinnerNotifier {
	return &WinnerNotifier{store: store, mailer: mailer}
}

// NotifyWinner processes one winner notification. bidID may be empty or
// stale; an unresolvable bid degrades to amount 0 instead of aborting.
func (n *WinnerNotifier) NotifyWinner(ctx context.Context, listingID, userID, bidID string) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, fmt.Errorf("notifier: winner %s on listing %s: %w", userID, listingID, err)
	}

	listing, err := n.store.GetListingByID(listingID)
	if err != nil {
		return Receipt{}, fmt.Errorf("notifier: failed to resolve listing %s: %w", listingID, err)
	}

	user, err := n.store.GetUserByID(userID)
	if err != nil {
		return Receipt{}, fmt.Errorf("notifier: failed to resolve user %s: %w", userID, err)
	}

	amount := 0.0
	if bidID != "" {
		bid, err := n.store.GetBidByID(bidID)
		if err != nil {
			utils.Warn("notifier: winning bid lookup failed, using amount 0", map[string]any{
				"listing_id": listingID,
				"bid_id":     bidID,
				"error":      err.Error(),
			})
		} else {
			amount = bid.Amount
		}
	}

	notification := models.Notification{
		NotificationID: utils.GenerateID(),
		UserID:         userID,
		Type:           "winner",
		Message: fmt.Sprintf(
			"Congratulations! You won the auction for %q with a bid of $%.2f. Please complete your payment within 24 hours.",
			listing.Title, amount),
		CreatedAt: time.Now().UTC(),
	}
	if err := n.store.CreateNotification(notification); err != nil {
		return Receipt{}, fmt.Errorf("notifier: failed to persist notification for user %s: %w", userID, err)
	}

	emailID, err := n.mailer.Send(ctx, Email{
		To:      user.Email,
		Subject: fmt.Sprintf("Congratulations! You won the auction for %q", listing.Title),
		Body: fmt.Sprintf(
			"Congratulations %s! You've won the auction for %q with a bid of $%.2f. "+
				"Please complete your payment within the next 24 hours to secure your win.",
			displayName(user), listing.Title, amount),
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("notifier: email to %s: %w: %v", user.Email, auctionerrors.ErrDeliveryFailed, err)
	}

	// The winner stays eligible for the next scan tick if this fails, so a
	// marking error is reported like any other per-winner failure.
	if err := n.store.MarkWinnerNotified(listingID, userID); err != nil {
		return Receipt{}, fmt.Errorf("notifier: failed to mark winner notified: %w", err)
	}

	utils.Info("notifier: winner notified", map[string]any{
		"listing_id": listingID,
		"user_id":    userID,
		"email_id":   emailID,
		"amount":     amount,
	})

	return Receipt{
		NotificationID: notification.NotificationID,
		EmailID:        emailID,
		Amount:         amount,
	}, nil
}

func displayName(user models.User) string {
	if user.Name != "" {
		return user.Name
	}
	return "valued customer"
}

// LogMailer "delivers" emails by logging them. It stands in for a real
// transport (Resend, SendGrid, SMTP) exactly as the storefront originally
// did, and still produces a delivery id.
type LogMailer struct{}

// Send logs the email content and returns a generated delivery id
func (LogMailer) Send(ctx context.Context, email Email) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if email.To == "" {
		return "", errors.New("email has no recipient")
	}

	emailID := utils.GenerateID()
	utils.Info("mailer: email content prepared", map[string]any{
		"email_id": emailID,
		"to":       email.To,
		"subject":  email.Subject,
	})
	return emailID, nil
}
