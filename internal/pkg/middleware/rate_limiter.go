package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/urbanthreads/internal/pkg/constants"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/utils"
)

// Counter is a fixed-window counter store, implemented by database.RedisClient
type Counter interface {
	IncrWithExpiry(ctx context.Context, key string, expiration time.Duration) (int64, time.Duration, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Counter  Counter
	Resource string        // resource name used in the Redis key
	Limit    int           // maximum number of requests per window
	Period   time.Duration // window length
}

// RateLimiterMiddleware limits requests per client IP with a Redis fixed window.
// Counter failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, c.RealIP())

			count, ttl, err := config.Counter.IncrWithExpiry(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				if ttl < 0 {
					ttl = config.Period
				}
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				header.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c)
			}

			header.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}

// IPRateLimiter creates an IP-based rate limiter for a resource
func IPRateLimiter(counter Counter, resource string, limit int, period time.Duration) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Counter:  counter,
		Resource: resource,
		Limit:    limit,
		Period:   period,
	})
}
