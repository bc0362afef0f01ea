package settlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/notifier"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/utils"
)

const (
	// DefaultBatchLimit caps how many ended auctions one scan picks up
	DefaultBatchLimit = 5
	// DefaultWorkers bounds the concurrent winner notifications per batch
	DefaultWorkers = 4
	// DefaultNotifyTimeout cancels one winner's notification attempt;
	// expiry counts as that winner's failure.
	DefaultNotifyTimeout = 10 * time.Second
)

// Notifier is the external capability that delivers one winner
// notification (persisted record plus email).
type Notifier interface {
	NotifyWinner(ctx context.Context, listingID, userID, bidID string) (notifier.Receipt, error)
}

// WinnerOutcome is the per-winner result of one scan, success or not
type WinnerOutcome struct {
	AuctionID string `json:"auction_id"`
	UserID    string `json:"user_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// BatchReport aggregates one scan invocation
type BatchReport struct {
	AuctionsScanned        int             `json:"auctions_scanned"`
	NotificationsAttempted int             `json:"notifications_attempted"`
	Results                []WinnerOutcome `json:"results"`
}

// SettlementService scans for auctions past their end time with winners
// still awaiting payment and fans out one notification attempt per winner.
type SettlementService struct {
	store         repository.AuctionStore
	notifier      Notifier
	batchLimit    int
	workers       int
	notifyTimeout time.Duration
}

// NewSettlementService creates a new SettlementService instance.
// Non-positive tuning values fall back to the package defaults.
func NewSettlementService(store repository.AuctionStore, n Notifier, batchLimit, workers int, notifyTimeout time.Duration) *SettlementService {
	if batchLimit <= 0 {
		batchLimit = DefaultBatchLimit
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &SettlementService{
		store:         store,
		notifier:      n,
		batchLimit:    batchLimit,
		workers:       workers,
		notifyTimeout: notifyTimeout,
	}
}

type notifyTask struct {
	listingID string
	winner    models.Winner
}

// ScanAndNotify runs one settlement scan as of now. Failing to list the
// candidate auctions is fatal for the batch; every failure below that
// granularity is isolated and folded into the report. Nothing is retried
// in-process: a winner that stays pending_payment is picked up again on
// the next invocation.
func (s *SettlementService) ScanAndNotify(ctx context.Context, now time.Time) (BatchReport, error) {
	auctions, err := s.store.FindEndedUnprocessedAuctions(now, s.batchLimit)
	if err != nil {
		return BatchReport{}, fmt.Errorf("settlement: failed to list ended auctions: %w", err)
	}

	utils.Info("settlement: scan started", map[string]any{
		"auctions": len(auctions),
		"as_of":    now.UTC().Format(time.RFC3339),
	})

	tasks := make([]notifyTask, 0)
	for _, auction := range auctions {
		if auction.Status != models.StatusEnded {
			// Listings close scanner-observed, not self-timed.
			if err := s.store.MarkListingEnded(auction.ListingID); err != nil {
				utils.Warn("settlement: could not mark listing ended", map[string]any{
					"listing_id": auction.ListingID,
					"error":      err.Error(),
				})
			}
		}

		winners, err := s.store.FindPendingWinners(auction.ListingID)
		if err != nil {
			utils.Warn("settlement: skipping auction, winners lookup failed", map[string]any{
				"listing_id": auction.ListingID,
				"error":      err.Error(),
			})
			continue
		}

		for _, winner := range winners {
			tasks = append(tasks, notifyTask{listingID: auction.ListingID, winner: winner})
		}
	}

	report := BatchReport{
		AuctionsScanned:        len(auctions),
		NotificationsAttempted: len(tasks),
		Results:                make([]WinnerOutcome, len(tasks)),
	}

	// Winners are independent: notify them with bounded concurrency, each
	// attempt on its own timeout.
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i, task := range tasks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, task notifyTask) {
			defer wg.Done()
			defer func() { <-sem }()
			report.Results[i] = s.notifyOne(ctx, task)
		}(i, task)
	}
	wg.Wait()

	utils.Info("settlement: scan finished", map[string]any{
		"auctions_scanned":        report.AuctionsScanned,
		"notifications_attempted": report.NotificationsAttempted,
	})
	return report, nil
}

func (s *SettlementService) notifyOne(ctx context.Context, task notifyTask) WinnerOutcome {
	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	outcome := WinnerOutcome{AuctionID: task.listingID, UserID: task.winner.UserID}
	_, err := s.notifier.NotifyWinner(notifyCtx, task.listingID, task.winner.UserID, task.winner.WinningBidID)
	if err != nil {
		outcome.Error = err.Error()
		utils.Error("settlement: winner notification failed", map[string]any{
			"listing_id": task.listingID,
			"user_id":    task.winner.UserID,
			"error":      err.Error(),
		})
		return outcome
	}

	outcome.Success = true
	return outcome
}

// StartPeriodicScan runs ScanAndNotify on a fixed interval until the
// context is cancelled. Results are logged; callers wanting the report use
// ScanAndNotify directly.
func (s *SettlementService) StartPeriodicScan(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case tick := <-ticker.C:
				if _, err := s.ScanAndNotify(ctx, tick); err != nil {
					utils.Error("settlement: periodic scan failed", map[string]any{"error": err.Error()})
				}
			}
		}
	}()
}
