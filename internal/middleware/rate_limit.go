package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	msgTooManyRequests = "請求過於頻繁，請稍後再試"

	rateLimitWindow  = time.Minute
	rateLimitTimeout = 200 * time.Millisecond
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	RequestsPerMinute int
	KeyPrefix         string
	// Scope labels rejections in metrics
	Scope string
}

// DefaultRateLimitConfig returns the global per-IP limit
func DefaultRateLimitConfig(perMinute int) RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: perMinute,
		KeyPrefix:         "site:ratelimit:",
		Scope:             "global",
	}
}

// ContactRateLimitConfig returns the stricter limit of the contact form
func ContactRateLimitConfig(perMinute int) RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: perMinute,
		KeyPrefix:         "site:ratelimit:contact:",
		Scope:             "contact",
	}
}

// rateLimitScript is an atomic Lua script for sliding window rate limiting
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local window_start = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
local count = redis.call('ZCARD', key)

if count < limit then
    redis.call('ZADD', key, now, now .. ':' .. math.random(1000000))
    redis.call('EXPIRE', key, math.ceil(window / 1000) + 1)
    return {1, limit - count - 1, 0}
else
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local reset_at = 0
    if #oldest >= 2 then
        reset_at = tonumber(oldest[2]) + window
    end
    return {0, 0, reset_at}
end
`)

// RateLimit limits requests per client IP with a sliding window in Redis.
// A nil client or a Redis failure lets the request through.
func RateLimit(redisClient *redis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil || cfg.RequestsPerMinute <= 0 {
			c.Next()
			return
		}

		key := cfg.KeyPrefix + c.ClientIP()
		now := time.Now().UnixMilli()

		ctx, cancel := context.WithTimeout(c.Request.Context(), rateLimitTimeout)
		defer cancel()
		result, err := rateLimitScript.Run(ctx, redisClient, []string{key},
			cfg.RequestsPerMinute, rateLimitWindow.Milliseconds(), now,
		).Int64Slice()
		if err != nil {
			// Fail open
			logger.GetLogger().Warn().Err(err).Str("scope", cfg.Scope).Msg("rate limit check failed")
			c.Next()
			return
		}

		allowed := result[0] == 1
		remaining := result[1]
		resetAt := result[2]

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			retryAfter := (resetAt - now) / 1000
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt/1000, 10))
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			rateLimitedTotal.WithLabelValues(cfg.Scope).Inc()
			common.Fail(c, common.TooManyRequests(msgTooManyRequests))
			return
		}

		c.Next()
	}
}
