package catalog

import (
	"fmt"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/auctionerrors"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"
)

// CatalogService serves the storefront browse surface: listing detail,
// filtered browsing, search and categories.
type CatalogService struct {
	store repository.AuctionStore
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(store repository.AuctionStore) *CatalogService {
	return &CatalogService{store: store}
}

// GetListing returns one listing by id
func (s *CatalogService) GetListing(listingID string) (models.Listing, error) {
	if listingID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidInput)
	}

	listing, err := s.store.GetListingByID(listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// BrowseListings returns listings matching the filter. An empty filter
// returns the whole catalog.
func (s *CatalogService) BrowseListings(filter repository.ListingFilter) ([]models.Listing, error) {
	if filter.Status != "" {
		switch filter.Status {
		case models.StatusActive, models.StatusUpcoming, models.StatusEnded:
		default:
			return nil, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidInput, filter.Status)
		}
	}

	listings, err := s.store.ListListings(filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to browse listings: %w", err)
	}
	return listings, nil
}

// Categories returns all storefront categories
func (s *CatalogService) Categories() ([]models.Category, error) {
	categories, err := s.store.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}
