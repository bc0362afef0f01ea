package seed

import (
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"
)

// Storefront populates an in-memory store with the demo catalog: three
// users, six categories and eight active listings with their bid history.
// Listing times are relative to now so the catalog always looks live.
func Storefront(store *repository.MemoryStore) {
	now := time.Now().UTC()
	days := func(d float64) time.Time { return now.Add(time.Duration(d * 24 * float64(time.Hour))) }
	hours := func(h float64) time.Time { return now.Add(time.Duration(h * float64(time.Hour))) }
	price := func(v float64) *float64 { return &v }

	for _, user := range []models.User{
		{UserID: "user1", Name: "Alex Johnson", Email: "alex@example.com", Rating: 4.8},
		{UserID: "user2", Name: "Sam Rodriguez", Email: "sam@example.com", Rating: 4.9},
		{UserID: "user3", Name: "Jordan Lee", Email: "jordan@example.com", Rating: 4.7},
	} {
		store.AddUser(user)
	}

	for _, category := range []models.Category{
		{CategoryID: "cat1", Name: "Electronics"},
		{CategoryID: "cat2", Name: "Art"},
		{CategoryID: "cat3", Name: "Collectibles"},
		{CategoryID: "cat4", Name: "Fashion"},
		{CategoryID: "cat5", Name: "Home & Garden"},
		{CategoryID: "cat6", Name: "Jewelry"},
	} {
		store.AddCategory(category)
	}

	listings := []models.Listing{
		{
			ListingID:     "item1",
			Title:         "Vintage Polaroid Camera",
			Description:   "A beautifully preserved vintage Polaroid camera from the 1970s. Perfect working condition with original case and manual.",
			StartingPrice: 50, CurrentBid: price(120), BidCount: 8,
			StartTime: days(-3), EndTime: days(2),
			Status: models.StatusActive, Category: "Electronics", SellerID: "user1", Featured: true,
		},
		{
			ListingID:     "item2",
			Title:         "Modern Abstract Painting",
			Description:   "Original acrylic painting on canvas. Signed by the artist. Size: 30\" x 40\".",
			StartingPrice: 200, CurrentBid: price(350), BidCount: 5,
			StartTime: days(-5), EndTime: days(1),
			Status: models.StatusActive, Category: "Art", SellerID: "user2", Featured: true,
		},
		{
			ListingID:     "item3",
			Title:         "Vintage Mechanical Watch",
			Description:   "Rare mechanical watch from the 1960s. Recently serviced, keeps perfect time. Includes original box.",
			StartingPrice: 1000, CurrentBid: price(1250), BidCount: 7,
			StartTime: days(-7), EndTime: days(0.5),
			Status: models.StatusActive, Category: "Collectibles", SellerID: "user3",
		},
		{
			ListingID:     "item4",
			Title:         "Designer Handbag",
			Description:   "Authentic designer handbag, gently used. Comes with dust bag and authenticity card.",
			StartingPrice: 500, CurrentBid: price(650), BidCount: 4,
			StartTime: days(-2), EndTime: days(3),
			Status: models.StatusActive, Category: "Fashion", SellerID: "user1",
		},
		{
			ListingID:     "item5",
			Title:         "Antique Ceramic Vase",
			Description:   "Beautiful hand-painted ceramic vase from the early 20th century. Perfect condition with no chips or cracks.",
			StartingPrice: 100, CurrentBid: price(180), BidCount: 9,
			StartTime: days(-4), EndTime: days(1.5),
			Status: models.StatusActive, Category: "Home & Garden", SellerID: "user2",
		},
		{
			ListingID:     "item6",
			Title:         "Diamond Pendant Necklace",
			Description:   "14k white gold necklace with 0.5 carat diamond pendant. Certified and appraised.",
			StartingPrice: 800, CurrentBid: price(950), BidCount: 3,
			StartTime: days(-1), EndTime: days(4),
			Status: models.StatusActive, Category: "Jewelry", SellerID: "user3", Featured: true,
		},
		{
			ListingID:     "item7",
			Title:         "Vintage Record Player",
			Description:   "Fully restored vintage record player from the 1960s. Beautiful sound quality.",
			StartingPrice: 300, CurrentBid: price(450), BidCount: 10,
			StartTime: days(-6), EndTime: days(0.2),
			Status: models.StatusActive, Category: "Electronics", SellerID: "user1",
		},
		{
			ListingID:     "item8",
			Title:         "Limited Edition Sneakers",
			Description:   "Rare limited edition sneakers, brand new in box. Size 10. Only 500 pairs made worldwide.",
			StartingPrice: 150, CurrentBid: price(320), BidCount: 15,
			StartTime: days(-5), EndTime: days(0.8),
			Status: models.StatusActive, Category: "Fashion", SellerID: "user2",
		},
	}
	for _, listing := range listings {
		store.AddListing(listing)
	}

	bids := []struct {
		id, listing, bidder string
		amount              float64
		at                  time.Time
	}{
		{"bid1", "item1", "user2", 120, hours(-5)},
		{"bid2", "item1", "user3", 110, hours(-6)},
		{"bid3", "item1", "user2", 100, hours(-7)},
		{"bid4", "item2", "user1", 350, hours(-2)},
		{"bid5", "item2", "user3", 300, hours(-10)},
		{"bid6", "item3", "user1", 1250, hours(-1)},
		{"bid7", "item3", "user2", 1200, hours(-8)},
		{"bid8", "item4", "user3", 650, hours(-4)},
		{"bid9", "item4", "user1", 600, hours(-12)},
		{"bid10", "item5", "user2", 180, hours(-3)},
		{"bid11", "item5", "user3", 160, hours(-9)},
		{"bid12", "item6", "user1", 950, hours(-6)},
		{"bid13", "item6", "user2", 900, hours(-11)},
		{"bid14", "item7", "user3", 450, hours(-2)},
		{"bid15", "item7", "user1", 420, hours(-13)},
		{"bid16", "item8", "user2", 320, hours(-1)},
		{"bid17", "item8", "user3", 300, hours(-7)},
	}
	for _, b := range bids {
		store.AddBid(models.Bid{
			BidID:     b.id,
			ListingID: b.listing,
			BidderID:  b.bidder,
			Amount:    b.amount,
			CreatedAt: b.at,
			Outcome:   models.BidAccepted,
		})
	}
}
