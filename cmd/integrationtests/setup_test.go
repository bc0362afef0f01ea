package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	bidding "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/biddingService"
	catalog "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/catalogService"
	model "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/notifier"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/server"
	settlement "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/settlementService"

	"github.com/gin-gonic/gin"
)

// routerOverLimit keeps the bid rate limiter out of the way; the one test
// that wants throttling builds its own router with tight limits.
var routerOverLimit = server.RouterOptions{BidRateLimitRPS: 10000, BidRateLimitBurst: 10000}

// SetupTestRouter wires a full router over a fresh in-memory store and
// returns both, so tests can seed and inspect the store directly.
func SetupTestRouter(opts server.RouterOptions) (*gin.Engine, *repository.MemoryStore) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()

	biddingSvc := bidding.NewBiddingService(store, bidding.DefaultMinIncrement)
	catalogSvc := catalog.NewCatalogService(store)
	winnerNotifier := notifier.NewWinnerNotifier(store, notifier.LogMailer{})
	settlementSvc := settlement.NewSettlementService(store, winnerNotifier,
		settlement.DefaultBatchLimit, settlement.DefaultWorkers, settlement.DefaultNotifyTimeout)

	router := server.SetupRouter(biddingSvc, catalogSvc, settlementSvc, winnerNotifier, opts)
	return router, store
}

// ActiveListing builds a listing open for bids
func ActiveListing(listingID string, startingPrice float64) model.Listing {
	now := time.Now().UTC()
	return model.Listing{
		ListingID:     listingID,
		Title:         "title-" + listingID,
		Description:   "description-" + listingID,
		StartingPrice: startingPrice,
		StartTime:     now.Add(-24 * time.Hour),
		EndTime:       now.Add(24 * time.Hour),
		Status:        model.StatusActive,
		Category:      "cat1",
	}
}

// EndedListing builds a listing past its end time, winners not yet processed
func EndedListing(listingID string, startingPrice float64, endedAgo time.Duration) model.Listing {
	listing := ActiveListing(listingID, startingPrice)
	listing.EndTime = time.Now().UTC().Add(-endedAgo)
	return listing
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
