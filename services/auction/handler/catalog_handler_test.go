package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/auctionerrors"
	model "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/models"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func catalogRouter(mockService *MockCatalogServiceInterface) *gin.Engine {
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/listings", handler.BrowseListingsHandler)
	router.GET("/listings/:listing_id", handler.GetListingHandler)
	router.GET("/categories", handler.ListCategoriesHandler)
	return router
}

// Test BrowseListingsHandler
func TestBrowseListingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	router := catalogRouter(mockService)

	listingsExample := []model.Listing{
		{ListingID: "item1", Title: "Vintage Polaroid Camera", StartingPrice: 50, Status: model.StatusActive, Category: "cat1", Featured: true},
	}

	featured := true
	tests := []struct {
		name           string
		url            string
		mockSetup      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "no_filters",
			url:  "/listings",
			mockSetup: func() {
				mockService.EXPECT().BrowseListings(repository.ListingFilter{}).Return(listingsExample, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "all_filters_forwarded",
			url:  "/listings?category=cat1&status=active&featured=true&q=camera",
			mockSetup: func() {
				mockService.EXPECT().
					BrowseListings(repository.ListingFilter{
						Category: "cat1",
						Status:   model.StatusActive,
						Featured: &featured,
						Query:    "camera",
					}).
					Return(listingsExample, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "empty_result_is_empty_list",
			url:  "/listings?category=cat9",
			mockSetup: func() {
				mockService.EXPECT().BrowseListings(repository.ListingFilter{Category: "cat9"}).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "bad_featured_flag",
			url:            "/listings?featured=maybe",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_status_rejected",
			url:  "/listings?status=cancelled",
			mockSetup: func() {
				mockService.EXPECT().BrowseListings(repository.ListingFilter{Status: "cancelled"}).
					Return(nil, fmt.Errorf("service: %w", auctionerrors.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service_error",
			url:  "/listings?q=typewriter",
			mockSetup: func() {
				mockService.EXPECT().BrowseListings(repository.ListingFilter{Query: "typewriter"}).
					Return(nil, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].([]any)
				require.Len(t, data, tc.expectedCount)
			}
		})
	}
}

// Test GetListingHandler
func TestGetListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	router := catalogRouter(mockService)

	now := time.Now().UTC()
	currentBid := 120.0
	listingExample := model.Listing{
		ListingID:     "item1",
		Title:         "Vintage Polaroid Camera",
		StartingPrice: 50,
		CurrentBid:    &currentBid,
		BidCount:      8,
		StartTime:     now.Add(-24 * time.Hour),
		EndTime:       now.Add(24 * time.Hour),
		Status:        model.StatusActive,
	}

	tests := []struct {
		name           string
		listingID      string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:      "found",
			listingID: "item1",
			mockSetup: func() {
				mockService.EXPECT().GetListing("item1").Return(listingExample, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "not_found",
			listingID: "missing",
			mockSetup: func() {
				mockService.EXPECT().GetListing("missing").
					Return(model.Listing{}, fmt.Errorf("service: %w", auctionerrors.ErrListingNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "service_error",
			listingID: "item2",
			mockSetup: func() {
				mockService.EXPECT().GetListing("item2").
					Return(model.Listing{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/listings/"+tc.listingID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, "item1", data["listing_id"])
				require.Equal(t, 120.0, data["current_bid"])
				require.Equal(t, 8.0, data["bid_count"])
			}
		})
	}
}

// Test ListCategoriesHandler
func TestListCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	router := catalogRouter(mockService)

	t.Run("returns_categories", func(t *testing.T) {
		mockService.EXPECT().Categories().Return([]model.Category{
			{CategoryID: "cat1", Name: "Electronics"},
			{CategoryID: "cat2", Name: "Art"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 2)
	})

	t.Run("service_error", func(t *testing.T) {
		mockService.EXPECT().Categories().Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
