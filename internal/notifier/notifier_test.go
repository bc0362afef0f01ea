package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/auctionerrors"
	model "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"

	"github.com/stretchr/testify/require"
)

// fakeMailer records the last email it saw and answers with a canned result
type fakeMailer struct {
	lastEmail Email
	emailID   string
	err       error
}

func (m *fakeMailer) Send(ctx context.Context, email Email) (string, error) {
	m.lastEmail = email
	if m.err != nil {
		return "", m.err
	}
	return m.emailID, nil
}

func winnerFixture(t *testing.T) *repository.MemoryStore {
	t.Helper()

	now := time.Now().UTC()
	store := repository.NewMemoryStore()
	currentBid := 175.0
	store.AddListing(model.Listing{
		ListingID:     "item1",
		Title:         "Vintage Polaroid Camera",
		StartingPrice: 50,
		CurrentBid:    &currentBid,
		StartTime:     now.Add(-48 * time.Hour),
		EndTime:       now.Add(-1 * time.Hour),
		Status:        model.StatusEnded,
	})
	store.AddUser(model.User{UserID: "user1", Name: "Alex Johnson", Email: "alex@example.com", Rating: 4.8})
	store.AddBid(model.Bid{BidID: "bid1", ListingID: "item1", BidderID: "user1", Amount: 175, CreatedAt: now.Add(-2 * time.Hour), Outcome: model.BidAccepted})
	store.AddWinner(model.Winner{WinnerID: "win1", ListingID: "item1", UserID: "user1", WinningBidID: "bid1", Status: model.WinnerPendingPayment})
	return store
}

func TestWinnerNotifier_NotifyWinner(t *testing.T) {
	t.Parallel()

	t.Run("success_notifies_and_marks_winner", func(t *testing.T) {
		t.Parallel()

		store := winnerFixture(t)
		mailer := &fakeMailer{emailID: "email1"}
		notifier := NewWinnerNotifier(store, mailer)

		receipt, err := notifier.NotifyWinner(context.Background(), "item1", "user1", "bid1")
		require.NoError(t, err)
		require.Equal(t, "email1", receipt.EmailID)
		require.Equal(t, 175.0, receipt.Amount)
		require.NotEmpty(t, receipt.NotificationID)

		// A notification record was persisted for the winner
		notifications := store.Notifications()
		require.Len(t, notifications, 1)
		require.Equal(t, "user1", notifications[0].UserID)
		require.Equal(t, "winner", notifications[0].Type)
		require.Contains(t, notifications[0].Message, "Vintage Polaroid Camera")
		require.Contains(t, notifications[0].Message, "$175.00")

		// The email went to the winner's address
		require.Equal(t, "alex@example.com", mailer.lastEmail.To)
		require.Contains(t, mailer.lastEmail.Body, "Alex Johnson")

		// The winner left the pending set
		pending, err := store.FindPendingWinners("item1")
		require.NoError(t, err)
		require.Empty(t, pending)
	})

	t.Run("unknown_listing_aborts", func(t *testing.T) {
		t.Parallel()

		store := winnerFixture(t)
		notifier := NewWinnerNotifier(store, &fakeMailer{emailID: "email1"})

		_, err := notifier.NotifyWinner(context.Background(), "missing", "user1", "bid1")
		require.True(t, errors.Is(err, auctionerrors.ErrListingNotFound))
		require.Empty(t, store.Notifications())
	})

	t.Run("unknown_user_aborts", func(t *testing.T) {
		t.Parallel()

		store := winnerFixture(t)
		notifier := NewWinnerNotifier(store, &fakeMailer{emailID: "email1"})

		_, err := notifier.NotifyWinner(context.Background(), "item1", "ghost", "bid1")
		require.True(t, errors.Is(err, auctionerrors.ErrUserNotFound))
		require.Empty(t, store.Notifications())
	})

	t.Run("unresolvable_bid_degrades_to_amount_zero", func(t *testing.T) {
		t.Parallel()

		store := winnerFixture(t)
		mailer := &fakeMailer{emailID: "email1"}
		notifier := NewWinnerNotifier(store, mailer)

		receipt, err := notifier.NotifyWinner(context.Background(), "item1", "user1", "stale-bid")
		require.NoError(t, err)
		require.Equal(t, 0.0, receipt.Amount)
		require.Contains(t, mailer.lastEmail.Body, "$0.00")
	})

	t.Run("empty_bid_id_degrades_to_amount_zero", func(t *testing.T) {
		t.Parallel()

		store := winnerFixture(t)
		notifier := NewWinnerNotifier(store, &fakeMailer{emailID: "email1"})

		receipt, err := notifier.NotifyWinner(context.Background(), "item1", "user1", "")
		require.NoError(t, err)
		require.Equal(t, 0.0, receipt.Amount)
	})

	t.Run("delivery_failure_leaves_winner_pending", func(t *testing.T) {
		t.Parallel()

		store := winnerFixture(t)
		mailer := &fakeMailer{err: errors.New("smtp timeout")}
		notifier := NewWinnerNotifier(store, mailer)

		_, err := notifier.NotifyWinner(context.Background(), "item1", "user1", "bid1")
		require.True(t, errors.Is(err, auctionerrors.ErrDeliveryFailed))

		// The winner stays eligible for the next scan
		pending, findErr := store.FindPendingWinners("item1")
		require.NoError(t, findErr)
		require.Len(t, pending, 1)
	})

	t.Run("cancelled_context_aborts_before_any_work", func(t *testing.T) {
		t.Parallel()

		store := winnerFixture(t)
		mailer := &fakeMailer{emailID: "email1"}
		notifier := NewWinnerNotifier(store, mailer)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := notifier.NotifyWinner(ctx, "item1", "user1", "bid1")
		require.True(t, errors.Is(err, context.Canceled))
		require.Empty(t, store.Notifications())
	})
}

func TestLogMailer_Send(t *testing.T) {
	t.Parallel()

	mailer := LogMailer{}

	emailID, err := mailer.Send(context.Background(), Email{To: "alex@example.com", Subject: "hi"})
	require.NoError(t, err)
	require.NotEmpty(t, emailID)

	_, err = mailer.Send(context.Background(), Email{Subject: "no recipient"})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = mailer.Send(ctx, Email{To: "alex@example.com"})
	require.True(t, errors.Is(err, context.Canceled))
}
