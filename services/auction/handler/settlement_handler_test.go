package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/notifier"
	settlement "github.com/ShahmeerHussainArgon/bid-buddy-bazaar/internal/settlementService"
	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func settlementRouter(service *MockSettlementServiceInterface, n *MockWinnerNotifierInterface) *gin.Engine {
	handler := NewSettlementHandler(service, n)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/process-auction-winners", handler.ProcessAuctionWinnersHandler)
	router.POST("/send-winner-email", handler.SendWinnerEmailHandler)
	return router
}

// Test ProcessAuctionWinnersHandler
func TestProcessAuctionWinnersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockSettlementServiceInterface(ctrl)
	mockNotifier := NewMockWinnerNotifierInterface(ctrl)
	router := settlementRouter(mockService, mockNotifier)

	t.Run("scan_succeeds", func(t *testing.T) {
		mockService.EXPECT().ScanAndNotify(gomock.Any(), gomock.Any()).
			Return(settlement.BatchReport{
				AuctionsScanned:        2,
				NotificationsAttempted: 3,
				Results: []settlement.WinnerOutcome{
					{AuctionID: "item1", UserID: "user1", Success: true},
					{AuctionID: "item1", UserID: "user2", Success: false, Error: "smtp timeout"},
					{AuctionID: "item2", UserID: "user3", Success: true},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/process-auction-winners", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, true, resp["success"])
		require.Equal(t, "Processed 2 auctions with 3 winner notifications", resp["message"])

		results := resp["results"].([]any)
		require.Len(t, results, 3)
		failed := results[1].(map[string]any)
		require.Equal(t, false, failed["success"])
		require.Equal(t, "smtp timeout", failed["error"])
	})

	t.Run("scan_fails", func(t *testing.T) {
		mockService.EXPECT().ScanAndNotify(gomock.Any(), gomock.Any()).
			Return(settlement.BatchReport{}, errors.New("db connection lost"))

		req := httptest.NewRequest(http.MethodPost, "/process-auction-winners", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, false, resp["success"])
		require.Contains(t, resp["error"], "db connection lost")
	})
}

// Test SendWinnerEmailHandler
func TestSendWinnerEmailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockSettlementServiceInterface(ctrl)
	mockNotifier := NewMockWinnerNotifierInterface(ctrl)
	router := settlementRouter(mockService, mockNotifier)

	tests := []struct {
		name            string
		requestBody     any
		mockSetup       func()
		expectedStatus  int
		expectedEmailID string
		expectedError   string
	}{
		{
			name:        "success",
			requestBody: helpers.WinnerEmailRequest{AuctionID: "item1", UserID: "user1", BidID: "bid1"},
			mockSetup: func() {
				mockNotifier.EXPECT().NotifyWinner(gomock.Any(), "item1", "user1", "bid1").
					Return(notifier.Receipt{NotificationID: "notif1", EmailID: "email1", Amount: 175}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedEmailID: "email1",
		},
		{
			name:        "missing_bid_id_is_allowed",
			requestBody: helpers.WinnerEmailRequest{AuctionID: "item2", UserID: "user2"},
			mockSetup: func() {
				mockNotifier.EXPECT().NotifyWinner(gomock.Any(), "item2", "user2", "").
					Return(notifier.Receipt{EmailID: "email2"}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedEmailID: "email2",
		},
		{
			name:           "missing_auction_id",
			requestBody:    helpers.WinnerEmailRequest{UserID: "user1", BidID: "bid1"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required parameters",
		},
		{
			name:           "missing_user_id",
			requestBody:    helpers.WinnerEmailRequest{AuctionID: "item1", BidID: "bid1"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required parameters",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required parameters",
		},
		{
			name:        "notifier_fails",
			requestBody: helpers.WinnerEmailRequest{AuctionID: "item3", UserID: "user3", BidID: "bid3"},
			mockSetup: func() {
				mockNotifier.EXPECT().NotifyWinner(gomock.Any(), "item3", "user3", "bid3").
					Return(notifier.Receipt{}, errors.New("user not found"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "user not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/send-winner-email", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			if tc.expectedStatus == http.StatusOK {
				require.Equal(t, true, resp["success"])
				require.Equal(t, "Winner notification processed", resp["message"])
				require.Equal(t, tc.expectedEmailID, resp["emailId"])
			} else {
				require.Equal(t, false, resp["success"])
				require.Contains(t, resp["error"], tc.expectedError)
			}
		})
	}
}
