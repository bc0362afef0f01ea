package server

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func limitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := NewBidRateLimiter(rps, burst)
	router.POST("/bids", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func TestBidRateLimiter_BurstThenThrottle(t *testing.T) {
	t.Parallel()

	router := limitedRouter(1, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bids", nil)
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	require.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestBidRateLimiter_RefillsOverTime(t *testing.T) {
	t.Parallel()

	router := limitedRouter(50, 1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bids", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bids", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// 50 rps refills one token within 20ms
	time.Sleep(40 * time.Millisecond)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bids", nil))
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestBidRateLimiter_IsolatesClients(t *testing.T) {
	t.Parallel()

	limiter := NewBidRateLimiter(1, 1)

	require.True(t, limiter.limiterFor("10.0.0.1").Allow())
	require.False(t, limiter.limiterFor("10.0.0.1").Allow())

	// A different client has its own budget
	require.True(t, limiter.limiterFor("10.0.0.2").Allow())
}

func TestBidRateLimiter_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	limiter := NewBidRateLimiter(1000, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				limiter.limiterFor("10.0.0.1").Allow()
			}
		}()
	}
	wg.Wait()
}
