package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(limiter *IPRateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(RateLimit(limiter))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func serveFrom(router *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.RemoteAddr = ip + ":1234"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects requests over the burst", func(t *testing.T) {
		router := newRateLimitedRouter(NewIPRateLimiter(0.001, 2))

		assert.Equal(t, http.StatusOK, serveFrom(router, "10.0.0.1"))
		assert.Equal(t, http.StatusOK, serveFrom(router, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, serveFrom(router, "10.0.0.1"))
	})

	t.Run("budgets are per IP", func(t *testing.T) {
		router := newRateLimitedRouter(NewIPRateLimiter(0.001, 1))

		assert.Equal(t, http.StatusOK, serveFrom(router, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, serveFrom(router, "10.0.0.1"))
		assert.Equal(t, http.StatusOK, serveFrom(router, "10.0.0.2"))
	})

	t.Run("burst below one is raised to one", func(t *testing.T) {
		router := newRateLimitedRouter(NewIPRateLimiter(0.001, 0))

		assert.Equal(t, http.StatusOK, serveFrom(router, "10.0.0.1"))
	})
}

func TestIPRateLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	limiter.GetLimiter("10.0.0.1")
	now = now.Add(2 * time.Minute)
	limiter.GetLimiter("10.0.0.2")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, limiter.Sweep())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 0, limiter.Sweep())
}

func TestIPRateLimiter_Run(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		limiter.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}
