package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// staleAfter is how long an idle key keeps its bucket
const staleAfter = 5 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key (client IP or user ID)
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	rate    rate.Limit
	burst   int
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests per key with the given burst
func NewRateLimiter(perMinute float64, burst int) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]*entry),
		rate:    rate.Limit(perMinute / 60.0),
		burst:   burst,
		now:     time.Now,
	}
}

// Allow reports whether key may make another request now
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	e, ok := rl.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.entries[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// Sweep drops buckets idle for longer than staleAfter
func (rl *RateLimiter) Sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-staleAfter)
	for key, e := range rl.entries {
		if e.lastSeen.Before(cutoff) {
			delete(rl.entries, key)
		}
	}
}

// Len returns the number of tracked keys
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.entries)
}

// RunSweeper sweeps periodically until done is closed
func (rl *RateLimiter) RunSweeper(done <-chan struct{}) {
	ticker := time.NewTicker(staleAfter)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Sweep()
		case <-done:
			return
		}
	}
}

// PerIP rate limits by client IP
func PerIP(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}

// PerUser rate limits by the identity set by RequireUser
func PerUser(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			c.Next()
			return
		}

		if !rl.Allow(userID) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please slow down.",
			})
			return
		}
		c.Next()
	}
}

// MessageLimiter throttles messages on a single WebSocket connection
type MessageLimiter struct {
	limiter *rate.Limiter
}

// NewMessageLimiter allows messagesPerMinute with an equal burst
func NewMessageLimiter(messagesPerMinute int) *MessageLimiter {
	return &MessageLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(messagesPerMinute)/60.0), messagesPerMinute),
	}
}

// Allow checks if another message is allowed
func (ml *MessageLimiter) Allow() bool {
	return ml.limiter.Allow()
}
