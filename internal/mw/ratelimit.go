package mw

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.RWMutex
	r   rate.Limit
	b   int
}

// NewIPRateLimiter creates an IPRateLimiter allowing r requests per
// second with bursts of b.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

// GetLimiter returns the limiter for ip, creating it on first sight.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.ips[ip]
	i.mu.RUnlock()
	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if limiter, exists = i.ips[ip]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(i.r, i.b)
	i.ips[ip] = limiter
	return limiter
}

// ClientIP resolves the client address, preferring the configured
// trusted header (e.g. X-Forwarded-For behind a proxy, first entry)
// over the connection address.
func ClientIP(c *gin.Context, ipHeader string) string {
	if ipHeader != "" {
		if v := c.GetHeader(ipHeader); v != "" {
			ip, _, _ := strings.Cut(v, ",")
			return strings.TrimSpace(ip)
		}
	}
	return c.ClientIP()
}

// RateLimit rejects clients that exceed their bucket with 429.
func RateLimit(limiter *IPRateLimiter, ipHeader string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.GetLimiter(ClientIP(c, ipHeader)).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
