package server

import (
	bidding "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/biddingService"
	catalog "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/catalogService"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/notifier"
	settlement "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/settlementService"
	handler "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/services/auction/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterOptions carries the tunables the router needs beyond its services
type RouterOptions struct {
	BidRateLimitRPS   float64
	BidRateLimitBurst int
}

// SetupRouter configures all Gin routes for the storefront
func SetupRouter(
	biddingService *bidding.BiddingService,
	catalogService *catalog.CatalogService,
	settlementService *settlement.SettlementService,
	winnerNotifier *notifier.WinnerNotifier,
	opts RouterOptions,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	// Permissive CORS, preflight included, matching the storefront's
	// historical headers.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"authorization", "x-client-info", "apikey", "content-type"},
	}))

	biddingHandler := handler.NewBiddingHandler(biddingService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	settlementHandler := handler.NewSettlementHandler(settlementService, winnerNotifier)

	if opts.BidRateLimitRPS <= 0 {
		opts.BidRateLimitRPS = 1
	}
	if opts.BidRateLimitBurst <= 0 {
		opts.BidRateLimitBurst = 3
	}
	bidLimiter := NewBidRateLimiter(opts.BidRateLimitRPS, opts.BidRateLimitBurst)

	bids := router.Group("/bids")
	{
		bids.POST("", bidLimiter.Middleware(), biddingHandler.PlaceBidHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("", catalogHandler.BrowseListingsHandler)
		listings.GET("/:listing_id", catalogHandler.GetListingHandler)
		listings.GET("/:listing_id/bids", biddingHandler.GetListingBidsHandler)
	}

	router.GET("/categories", catalogHandler.ListCategoriesHandler)

	router.POST("/process-auction-winners", settlementHandler.ProcessAuctionWinnersHandler)
	router.POST("/send-winner-email", settlementHandler.SendWinnerEmailHandler)

	return router
}
