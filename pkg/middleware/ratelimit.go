package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// DefaultLimiterIdle is how long an idle client keeps its limiter
const DefaultLimiterIdle = 3 * time.Minute

// IPRateLimiter keeps one token bucket per client IP
type IPRateLimiter struct {
	mu    sync.Mutex
	ips   map[string]*rateLimiterEntry
	r     rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a limiter allowing rps requests per second with the
// given burst per IP
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		ips:   make(map[string]*rateLimiterEntry),
		r:     rate.Limit(rps),
		burst: burst,
		idle:  DefaultLimiterIdle,
		now:   time.Now,
	}
}

// GetLimiter returns the rate limiter for the given IP
func (rl *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.ips[ip]
	if !ok {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.r, rl.burst)}
		rl.ips[ip] = entry
	}
	entry.lastSeen = rl.now()
	return entry.limiter
}

// Sweep drops limiters idle for longer than the idle period and returns how
// many are left
func (rl *IPRateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, entry := range rl.ips {
		if now.Sub(entry.lastSeen) > rl.idle {
			delete(rl.ips, ip)
		}
	}
	return len(rl.ips)
}

// Run sweeps every interval until ctx is done
func (rl *IPRateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Sweep()
		}
	}
}

// RateLimit rejects requests over the per-IP budget with 429
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.GetLimiter(ip).Allow() {
			log.Warn().
				Str("ip", ip).
				Str("path", c.Request.URL.Path).
				Msg("Rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Too many requests",
			})
			return
		}
		c.Next()
	}
}
