package handler

import (
	"fmt"
	"net/http"
	"strconv"

	model "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/services/auction/helpers"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	GetListing(listingID string) (model.Listing, error)
	BrowseListings(filter repository.ListingFilter) ([]model.Listing, error)
	Categories() ([]model.Category, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// BrowseListingsHandler handles GET /listings with optional
// category/status/featured/q query filters
func (h *CatalogHandler) BrowseListingsHandler(c *gin.Context) {
	filter := repository.ListingFilter{
		Category: c.Query("category"),
		Status:   model.AuctionStatus(c.Query("status")),
		Query:    c.Query("q"),
	}
	if raw, ok := c.GetQuery("featured"); ok {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			helpers.HandleBindError(c, "BrowseListingsHandler", fmt.Errorf("featured must be a boolean: %w", err))
			return
		}
		filter.Featured = &featured
	}

	listings, err := h.service.BrowseListings(filter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BrowseListingsHandler: error browsing listings", map[string]any{"error": err.Error()})
		return
	}

	if listings == nil {
		listings = []model.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
	helpers.LogSuccess("BrowseListingsHandler", "listings retrieved successfully", map[string]any{
		"count": len(listings),
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *CatalogHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listing, err := h.service.GetListing(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetListingHandler: error retrieving listing", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "listing retrieved successfully")
	helpers.LogSuccess("GetListingHandler", "listing retrieved successfully", map[string]any{
		"listing_id": listing.ListingID,
	})
}

// ListCategoriesHandler handles GET /categories
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.Categories()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListCategoriesHandler: error retrieving categories", map[string]any{"error": err.Error()})
		return
	}

	if categories == nil {
		categories = []model.Category{}
	}

	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
}
