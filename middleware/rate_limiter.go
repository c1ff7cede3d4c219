package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientWindow struct {
	count       int
	windowStart time.Time
}

// RateLimiter is a fixed-window per-IP limiter. Windows are tracked per
// client and reset lazily on the next request after expiry.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
	}

	// Drop stale entries so the map does not grow with one-off clients
	go func() {
		for {
			time.Sleep(window)
			cutoff := time.Now().Add(-window)
			rl.mu.Lock()
			for ip, cw := range rl.clients {
				if cw.windowStart.Before(cutoff) {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()

	return rl
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			ip = c.ClientIP()
		}

		rl.mu.Lock()
		now := time.Now()
		cw, ok := rl.clients[ip]
		if !ok || now.Sub(cw.windowStart) >= rl.window {
			cw = &clientWindow{windowStart: now}
			rl.clients[ip] = cw
		}
		cw.count++
		exceeded := cw.count > rl.limit
		rl.mu.Unlock()

		if exceeded {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too Many Requests",
				"message": "Rate limit exceeded. Please wait before making more requests.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Shared limiter instances. Chat answers can fan out to the generative
// backend, so they get a tighter budget than plain reads.
var (
	GlobalRateLimiter = NewRateLimiter(100, 1*time.Minute)
	ChatRateLimiter   = NewRateLimiter(20, 1*time.Minute)
	StrictRateLimiter = NewRateLimiter(5, 1*time.Minute)
)
