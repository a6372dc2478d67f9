package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"nextaccounting/config"
)

// clientLimiters tracks one token bucket per calling IP.
type clientLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

var limiters = &clientLimiters{
	buckets: make(map[string]*rate.Limiter),
}

func (cl *clientLimiters) bucketFor(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if b, ok := cl.buckets[ip]; ok {
		return b
	}

	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 120
	}
	b := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
	cl.buckets[ip] = b
	return b
}

// RateLimitMiddleware rejects clients exceeding the configured per-minute
// request quota.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !limiters.bucketFor(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
