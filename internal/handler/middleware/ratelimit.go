package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/clock"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/config"
)

// RateLimiter is a fixed-window counter keyed by client IP. State lives in
// one mutex-guarded map owned by this struct; expired windows are swept
// lazily whenever the map grows past sweepThreshold.
type RateLimiter struct {
	mu       sync.Mutex
	counters map[string]*window
	limit    int
	interval time.Duration
	clock    clock.Clock
}

type window struct {
	count     int
	expiresAt time.Time
}

const sweepThreshold = 1024

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		counters: make(map[string]*window),
		limit:    cfg.Requests,
		interval: cfg.Window,
		clock:    clk,
	}
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Too many requests, please try again later"},
			})
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.counters[key]
	if !ok || now.After(w.expiresAt) {
		if len(l.counters) >= sweepThreshold {
			l.sweep(now)
		}
		l.counters[key] = &window{count: 1, expiresAt: now.Add(l.interval)}
		return true
	}

	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// sweep removes expired windows. Caller must hold the lock.
func (l *RateLimiter) sweep(now time.Time) {
	for key, w := range l.counters {
		if now.After(w.expiresAt) {
			delete(l.counters, key)
		}
	}
}
