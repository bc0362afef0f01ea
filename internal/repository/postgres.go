package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/configs"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/auctionerrors"
	model "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore is the persistent implementation of AuctionStore
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection pool against the configured database
func NewPostgresStore(cfg *configs.Config) (*PostgresStore, error) {
	dbConfig := cfg.Database
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.Name,
		dbConfig.SSLMode,
	)

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("postgres: opening connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres: pinging database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Close terminates the database connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

const listingColumns = `listing_id, title, description, starting_price, current_bid, bid_count,
		start_time, end_time, status, category, seller_id, featured, winners_processed`

func scanListing(row interface{ Scan(...any) error }) (model.Listing, error) {
	var listing model.Listing
	var currentBid sql.NullFloat64
	err := row.Scan(
		&listing.ListingID,
		&listing.Title,
		&listing.Description,
		&listing.StartingPrice,
		&currentBid,
		&listing.BidCount,
		&listing.StartTime,
		&listing.EndTime,
		&listing.Status,
		&listing.Category,
		&listing.SellerID,
		&listing.Featured,
		&listing.WinnersProcessed,
	)
	if err != nil {
		return model.Listing{}, err
	}
	if currentBid.Valid {
		listing.CurrentBid = &currentBid.Float64
	}
	return listing, nil
}

// GetListingByID returns one listing by id
func (s *PostgresStore) GetListingByID(listingID string) (model.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE listing_id = $1`
	listing, err := scanListing(s.db.QueryRow(query, listingID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// ListListings returns listings matching the filter, newest start first
func (s *PostgresStore) ListListings(filter ListingFilter) ([]model.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE 1=1`
	args := make([]any, 0, 4)

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		query += fmt.Sprintf(" AND featured = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	query += ` ORDER BY start_time DESC, listing_id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	listings := make([]model.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("list listings: scanning row: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list listings: iterating rows: %w", err)
	}
	return listings, nil
}

// ListCategories returns all storefront categories
func (s *PostgresStore) ListCategories() ([]model.Category, error) {
	rows, err := s.db.Query(`SELECT category_id, name FROM categories ORDER BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.CategoryID, &category.Name); err != nil {
			return nil, fmt.Errorf("list categories: scanning row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: iterating rows: %w", err)
	}
	return categories, nil
}

// GetBidsByListing returns all accepted bids for a listing, newest first
func (s *PostgresStore) GetBidsByListing(listingID string) ([]model.Bid, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM listings WHERE listing_id = $1)`, listingID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, err)
	}
	if !exists {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}

	rows, err := s.db.Query(
		`SELECT bid_id, listing_id, bidder_id, amount, created_at, outcome
		 FROM bids WHERE listing_id = $1 ORDER BY created_at DESC`, listingID)
	if err != nil {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		var bid model.Bid
		if err := rows.Scan(&bid.BidID, &bid.ListingID, &bid.BidderID, &bid.Amount, &bid.CreatedAt, &bid.Outcome); err != nil {
			return nil, fmt.Errorf("get bids for listing %s: scanning row: %w", listingID, err)
		}
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for listing %s: iterating rows: %w", listingID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

// GetBidByID returns one bid by its id
func (s *PostgresStore) GetBidByID(bidID string) (model.Bid, error) {
	var bid model.Bid
	err := s.db.QueryRow(
		`SELECT bid_id, listing_id, bidder_id, amount, created_at, outcome FROM bids WHERE bid_id = $1`, bidID).
		Scan(&bid.BidID, &bid.ListingID, &bid.BidderID, &bid.Amount, &bid.CreatedAt, &bid.Outcome)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// ApplyAcceptedBid commits the bid row and the listing price state in one
// serializable transaction. The row lock plus the floor comparison gives
// the optimistic-concurrency contract of the AuctionStore interface.
func (s *PostgresStore) ApplyAcceptedBid(bid model.Bid, expectedFloor float64) (err error) {
	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("apply bid for listing %s: starting transaction: %w", bid.ListingID, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var startingPrice float64
	var currentBid sql.NullFloat64
	err = tx.QueryRowContext(ctx,
		`SELECT starting_price, current_bid FROM listings WHERE listing_id = $1 FOR UPDATE`, bid.ListingID).
		Scan(&startingPrice, &currentBid)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("apply bid for listing %s: %w", bid.ListingID, auctionerrors.ErrListingNotFound)
	}
	if err != nil {
		return fmt.Errorf("apply bid for listing %s: %w", bid.ListingID, err)
	}

	floor := startingPrice
	if currentBid.Valid {
		floor = currentBid.Float64
	}
	if floor != expectedFloor {
		err = fmt.Errorf("apply bid for listing %s: %w", bid.ListingID, auctionerrors.ErrBidConflict)
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE listings SET current_bid = $1, bid_count = bid_count + 1 WHERE listing_id = $2`,
		bid.Amount, bid.ListingID)
	if err != nil {
		return fmt.Errorf("apply bid for listing %s: updating listing: %w", bid.ListingID, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bids (bid_id, listing_id, bidder_id, amount, created_at, outcome)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		bid.BidID, bid.ListingID, bid.BidderID, bid.Amount, bid.CreatedAt, bid.Outcome)
	if err != nil {
		return fmt.Errorf("apply bid for listing %s: inserting bid: %w", bid.ListingID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("apply bid for listing %s: committing: %w", bid.ListingID, err)
	}
	return nil
}

// GetUserByID returns one user by id
func (s *PostgresStore) GetUserByID(userID string) (model.User, error) {
	var user model.User
	err := s.db.QueryRow(
		`SELECT user_id, name, email, rating FROM users WHERE user_id = $1`, userID).
		Scan(&user.UserID, &user.Name, &user.Email, &user.Rating)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// FindEndedUnprocessedAuctions returns up to limit listings past their end
// time whose winners are not yet processed, most recently ended first
func (s *PostgresStore) FindEndedUnprocessedAuctions(now time.Time, limit int) ([]model.Listing, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `SELECT ` + listingColumns + `
		FROM listings
		WHERE end_time < $1 AND winners_processed = FALSE
		ORDER BY end_time DESC
		LIMIT $2`

	rows, err := s.db.Query(query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("find ended auctions: %w", err)
	}
	defer rows.Close()

	listings := make([]model.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("find ended auctions: scanning row: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find ended auctions: iterating rows: %w", err)
	}
	return listings, nil
}

// FindPendingWinners returns winners of a listing still awaiting payment
func (s *PostgresStore) FindPendingWinners(listingID string) ([]model.Winner, error) {
	rows, err := s.db.Query(
		`SELECT winner_id, listing_id, user_id, winning_bid_id, status
		 FROM auction_winners WHERE listing_id = $1 AND status = $2`,
		listingID, model.WinnerPendingPayment)
	if err != nil {
		return nil, fmt.Errorf("find winners for listing %s: %w", listingID, err)
	}
	defer rows.Close()

	winners := make([]model.Winner, 0)
	for rows.Next() {
		var winner model.Winner
		if err := rows.Scan(&winner.WinnerID, &winner.ListingID, &winner.UserID, &winner.WinningBidID, &winner.Status); err != nil {
			return nil, fmt.Errorf("find winners for listing %s: scanning row: %w", listingID, err)
		}
		winners = append(winners, winner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find winners for listing %s: iterating rows: %w", listingID, err)
	}
	return winners, nil
}

// MarkWinnerNotified transitions a pending winner to notified
func (s *PostgresStore) MarkWinnerNotified(listingID, userID string) error {
	result, err := s.db.Exec(
		`UPDATE auction_winners SET status = $1 WHERE listing_id = $2 AND user_id = $3 AND status = $4`,
		model.WinnerNotified, listingID, userID, model.WinnerPendingPayment)
	if err != nil {
		return fmt.Errorf("mark winner notified for listing %s user %s: %w", listingID, userID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark winner notified for listing %s user %s: %w", listingID, userID, err)
	}
	if affected == 0 {
		return fmt.Errorf("mark winner notified for listing %s user %s: no pending winner", listingID, userID)
	}
	return nil
}

// MarkListingEnded records the scanner's observation that a listing is past
// its end time
func (s *PostgresStore) MarkListingEnded(listingID string) error {
	result, err := s.db.Exec(
		`UPDATE listings SET status = $1 WHERE listing_id = $2`, model.StatusEnded, listingID)
	if err != nil {
		return fmt.Errorf("mark listing %s ended: %w", listingID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark listing %s ended: %w", listingID, err)
	}
	if affected == 0 {
		return fmt.Errorf("mark listing %s ended: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return nil
}

// CreateNotification persists a notification record
func (s *PostgresStore) CreateNotification(n model.Notification) error {
	_, err := s.db.Exec(
		`INSERT INTO notifications (notification_id, user_id, type, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		n.NotificationID, n.UserID, n.Type, n.Message, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("create notification for user %s: %w", n.UserID, err)
	}
	return nil
}
