package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"floorplan-web/internal/cache"
)

// Limiter decides whether a request from key (the client IP) may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimiter holds in-memory token buckets for different IPs
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit // requests per second
	burst    int        // maximum burst size
	done     chan struct{}
	once     sync.Once
}

// visitor holds a rate limiter for a specific IP
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter
// rps: requests per second
// burst: maximum burst size (allows short bursts above the rate)
func NewRateLimiter(rps rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rps,
		burst:    burst,
		done:     make(chan struct{}),
	}

	// Clean up old visitors every 5 minutes
	go rl.cleanupVisitors(5*time.Minute, 10*time.Minute)

	return rl
}

// getVisitor returns the rate limiter for a specific IP, creating one if needed
func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{
			limiter:  limiter,
			lastSeen: time.Now(),
		}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes visitors not seen within idle until Close is called
func (rl *RateLimiter) cleanupVisitors(every, idle time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.evictIdle(idle)
		}
	}
}

func (rl *RateLimiter) evictIdle(idle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) Allow(_ context.Context, ip string) (bool, error) {
	return rl.getVisitor(ip).Allow(), nil
}

// Close stops the cleanup goroutine
func (rl *RateLimiter) Close() {
	rl.once.Do(func() { close(rl.done) })
}

// RedisRateLimiter counts requests per IP in fixed windows shared by every instance.
// A window lasts burst/rps seconds and admits burst requests, which averages to rps.
type RedisRateLimiter struct {
	counter cache.Counter
	prefix  string
	limit   int64
	window  time.Duration
}

func NewRedisRateLimiter(counter cache.Counter, prefix string, rps float64, burst int) *RedisRateLimiter {
	if burst < 1 {
		burst = 1
	}
	window := time.Second
	if rps > 0 {
		window = time.Duration(float64(burst) / rps * float64(time.Second))
	}
	return &RedisRateLimiter{
		counter: counter,
		prefix:  prefix,
		limit:   int64(burst),
		window:  window,
	}
}

func (rl *RedisRateLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", rl.prefix, ip)
	count, err := rl.counter.Incr(ctx, key, rl.window)
	if err != nil {
		return false, err
	}
	return count <= rl.limit, nil
}

// LimitMiddleware returns a Gin middleware that rate limits requests by client IP.
// If the limiter's backing store fails the request is let through.
func LimitMiddleware(l Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		allowed, err := l.Allow(c.Request.Context(), ip)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			abortWithError(c, http.StatusTooManyRequests, "Too many requests", "Rate limit exceeded. Please try again later.")
			return
		}

		c.Next()
	}
}
