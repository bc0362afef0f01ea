package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/ShahmeerHussainArgon/bid-buddy-bazaar/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// BidRateLimiter throttles bid submissions per client to keep one bidder
// from spamming the floor.
type BidRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewBidRateLimiter creates a limiter allowing rps requests per second
// with the given burst per client
func NewBidRateLimiter(rps float64, burst int) *BidRateLimiter {
	return &BidRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *BidRateLimiter) limiterFor(clientKey string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[clientKey]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[clientKey] = limiter
	}
	return limiter
}

// Middleware rejects requests over the per-client budget with 429
func (l *BidRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := c.ClientIP()
		if !l.limiterFor(clientKey).Allow() {
			utils.Warn("rate limit exceeded", map[string]any{"client": clientKey, "path": c.Request.URL.Path})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  http.StatusTooManyRequests,
				"message": "too many bids, slow down",
			})
			return
		}
		c.Next()
	}
}
