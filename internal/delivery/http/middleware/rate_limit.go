package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/FarazAhsan11/candidate-management/internal/delivery/http/response"
	"github.com/FarazAhsan11/candidate-management/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig describes one limiter: how many requests per window, how
// requests map onto counter keys, and what happens when Redis is down.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
	// KeyFunc extracts the counter key from a request; defaults to client IP.
	KeyFunc func(*gin.Context) string
	// FailClosed rejects requests when Redis errors instead of falling back
	// to the in-memory counters.
	FailClosed bool
}

// envInt reads an integer knob with a fallback for unset or malformed values.
func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// DefaultRateLimitConfig is the global per-IP limit applied to every route.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     envInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		Window:    time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		KeyPrefix: "rl:ip:",
		KeyFunc:   func(c *gin.Context) string { return c.ClientIP() },
	}
}

// UploadRateLimitConfig is the tighter limit for the multipart write
// endpoints, which carry resume uploads.
func UploadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     envInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		Window:    time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		KeyPrefix: "rl:upload:",
		KeyFunc:   func(c *gin.Context) string { return c.ClientIP() },
	}
}

// GlobalRateLimitMiddleware applies the default limiter to all routes.
func GlobalRateLimitMiddleware() gin.HandlerFunc {
	return RateLimitMiddleware(DefaultRateLimitConfig())
}

// UploadRateLimitMiddleware limits the resume-carrying write endpoints.
func UploadRateLimitMiddleware() gin.HandlerFunc {
	return RateLimitMiddleware(UploadRateLimitConfig())
}

// RateLimitMiddleware builds a fixed-window limiter. Counters live in Redis
// when a client is configured; otherwise, and on Redis errors with FailClosed
// unset, a process-local fallback keeps the limit enforced per instance.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	local := newMemoryCounters(cfg.Window)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + cfg.KeyFunc(c)

		count, resetAt, err := redisCount(c.Request.Context(), key, cfg.Window)
		if err != nil {
			if cfg.FailClosed {
				slog.Warn("rate limit backend unavailable", "key", key, "error", err)
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", "")
				c.Abort()
				return
			}
			count, resetAt = local.bump(key)
		}

		if count > cfg.Limit {
			retryAfter := max(int(time.Until(resetAt).Seconds()), 1)
			c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			slog.Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.FullPath())
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", "")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(cfg.Limit-count, 0)))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
		c.Next()
	}
}

// INCR and EXPIRE must be atomic so the window TTL is set exactly once.
const counterScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('TTL', KEYS[1])}
`

var errNoRedis = fmt.Errorf("redis not configured")

// redisCount bumps the key's counter in Redis and reports the new count and
// the end of the current window.
func redisCount(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	client := redis.Client()
	if client == nil {
		return 0, time.Time{}, errNoRedis
	}

	result, err := client.Eval(ctx, counterScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: %w", err)
	}
	pair, ok := result.([]interface{})
	if !ok || len(pair) < 2 {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: unexpected reply %T", result)
	}

	count, _ := pair[0].(int64)
	ttl, _ := pair[1].(int64)
	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// memoryCounters is the per-process fallback: fixed windows keyed like the
// Redis counters, pruned lazily on access.
type memoryCounters struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]*counterWindow
}

type counterWindow struct {
	count   int
	resetAt time.Time
}

func newMemoryCounters(window time.Duration) *memoryCounters {
	return &memoryCounters{
		window:  window,
		entries: make(map[string]*counterWindow),
	}
}

func (m *memoryCounters) bump(key string) (int, time.Time) {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.entries[key]
	if entry == nil || now.After(entry.resetAt) {
		entry = &counterWindow{resetAt: now.Add(m.window)}
		m.entries[key] = entry
		m.prune(now)
	}
	entry.count++
	return entry.count, entry.resetAt
}

// prune drops expired windows. Called under the lock whenever a new window
// starts, which bounds the map to active clients.
func (m *memoryCounters) prune(now time.Time) {
	for key, entry := range m.entries {
		if now.After(entry.resetAt) {
			delete(m.entries, key)
		}
	}
}
