package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/configs"
	bidding "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/biddingService"
	catalog "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/catalogService"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/notifier"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/seed"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/server"
	settlement "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/settlementService"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/utils"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.Server.LogLevel)

	store, cleanup, err := buildStore(cfg)
	if err != nil {
		utils.Fatal("Failed to initialize storage", map[string]any{
			"driver": cfg.Storage.Driver,
			"error":  err.Error(),
		})
	}
	defer cleanup()

	biddingSvc := bidding.NewBiddingService(store, cfg.Bidding.MinIncrement)
	catalogSvc := catalog.NewCatalogService(store)
	winnerNotifier := notifier.NewWinnerNotifier(store, notifier.LogMailer{})
	settlementSvc := settlement.NewSettlementService(
		store,
		winnerNotifier,
		cfg.Settlement.BatchLimit,
		cfg.Settlement.Workers,
		time.Duration(cfg.Settlement.NotifyTimeoutSeconds)*time.Second,
	)

	if cfg.Settlement.ScanIntervalMinutes > 0 {
		scanCtx, stopScan := context.WithCancel(context.Background())
		defer stopScan()
		settlementSvc.StartPeriodicScan(scanCtx, time.Duration(cfg.Settlement.ScanIntervalMinutes)*time.Minute)
	}

	router := server.SetupRouter(biddingSvc, catalogSvc, settlementSvc, winnerNotifier, server.RouterOptions{
		BidRateLimitRPS:   cfg.Bidding.RateLimitRPS,
		BidRateLimitBurst: cfg.Bidding.RateLimitBurst,
	})

	addr := ":" + cfg.Server.Port
	utils.Info("Starting auction storefront server", map[string]any{
		"addr":    addr,
		"storage": cfg.Storage.Driver,
	})
	if err := router.Run(addr); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}

// buildStore selects the storage backend. The memory driver is seeded with
// demo storefront data; postgres expects its schema to exist already.
func buildStore(cfg *configs.Config) (repository.AuctionStore, func(), error) {
	switch cfg.Storage.Driver {
	case "postgres":
		store, err := repository.NewPostgresStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case "memory", "":
		store := repository.NewMemoryStore()
		seed.Storefront(store)
		return store, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
